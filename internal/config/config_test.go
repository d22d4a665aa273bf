package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCSV(t *testing.T) {
	assert.Nil(t, splitCSV(""))
	assert.Equal(t, []string{"a", "b"}, splitCSV("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a , b , "))
	assert.Equal(t, []string{"owner/repo"}, splitCSV("owner/repo"))
}

func TestMailConfigured(t *testing.T) {
	cfg := &Config{
		SMTPHost: "smtp.example.com",
		SMTPUser: "relay@example.com",
		SMTPPass: "secret",
		ToEmail:  "shaun@example.com",
	}
	assert.True(t, cfg.MailConfigured())

	partial := *cfg
	partial.SMTPPass = ""
	assert.False(t, partial.MailConfigured())

	assert.False(t, (&Config{}).MailConfigured())
}

func TestValidate(t *testing.T) {
	err := (&Config{}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_USERNAME")

	assert.NoError(t, (&Config{GitHubUsername: "shaun"}).Validate())
}
