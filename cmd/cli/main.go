package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/shaun/portfolio-api/internal/config"
	"github.com/shaun/portfolio-api/internal/domain"
	"github.com/shaun/portfolio-api/pkg/client"
)

var (
	endpoint   string
	outputJSON bool

	contactName    string
	contactEmail   string
	contactSubject string
	contactMessage string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio backend tool",
	Long: `A CLI for a running portfolio backend instance.

Lists the aggregated GitHub repositories the site will show and sends
test contact submissions through the relay pipeline.`,
}

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List aggregated repositories",
	Long:  `Display the enriched repository list as served by the aggregation endpoint.`,
	RunE:  runRepos,
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact submission",
	Long:  `Submit a contact message through the running backend, exercising the full relay pipeline.`,
	RunE:  runContact,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "API endpoint (default from API_ENDPOINT)")
	reposCmd.Flags().BoolVar(&outputJSON, "json", false, "output in JSON format")

	contactCmd.Flags().StringVar(&contactName, "name", "", "sender name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "sender email")
	contactCmd.Flags().StringVar(&contactSubject, "subject", "", "message subject")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "message body")
	_ = contactCmd.MarkFlagRequired("name")
	_ = contactCmd.MarkFlagRequired("email")
	_ = contactCmd.MarkFlagRequired("subject")
	_ = contactCmd.MarkFlagRequired("message")

	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(contactCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func apiClient() (*client.Client, error) {
	if endpoint != "" {
		return client.NewClient(endpoint), nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return client.NewClient(cfg.APIEndpoint), nil
}

func runRepos(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	repos, err := c.Repos()
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(repos)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Stars", "Forks", "Languages", "Commits 30d", "Updated"})
	for _, r := range repos {
		table.Append([]string{
			r.FullName,
			fmt.Sprintf("%d", r.Stars),
			fmt.Sprintf("%d", r.Forks),
			formatLanguages(r.LanguagesTop),
			fmt.Sprintf("%d", r.RecentCommits30),
			r.UpdatedAt.Format("2006-01-02"),
		})
	}
	table.Render()

	return nil
}

func runContact(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	// Backdate the compose timestamp so a hand-typed test send passes the
	// minimum-time screen
	sub := domain.ContactSubmission{
		Name:      contactName,
		Email:     contactEmail,
		Subject:   contactSubject,
		Message:   contactMessage,
		StartedAt: time.Now().Add(-10 * time.Second).UnixMilli(),
	}

	if err := c.SendContact(sub); err != nil {
		return fmt.Errorf("failed to send: %w", err)
	}

	fmt.Println("Message sent.")
	return nil
}

func formatLanguages(shares []domain.LanguageShare) string {
	if len(shares) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(shares))
	for _, s := range shares {
		parts = append(parts, fmt.Sprintf("%s %d%%", s.Name, s.Percent))
	}
	return strings.Join(parts, ", ")
}
