package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shaun/portfolio-api/internal/domain"
)

// Client is the API client for the portfolio backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Repos retrieves the aggregated repository list
func (c *Client) Repos() ([]domain.RepositorySummary, error) {
	var repos []domain.RepositorySummary
	if err := c.get("/api/github/repos", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// SendContact submits a contact message
func (c *Client) SendContact(sub domain.ContactSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/contact", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("API error: %s", resp.Status)
	}
	if !result.OK {
		return fmt.Errorf("contact rejected: %s (%s)", result.Error, resp.Status)
	}
	return nil
}

// Health checks the health of the API server
func (c *Client) Health() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, result interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
