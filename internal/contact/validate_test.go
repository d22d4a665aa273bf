package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaun/portfolio-api/internal/domain"
)

func validSubmission() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hi",
		Message: strings.Repeat("A", 10),
	}
}

func TestValidate_Accepts(t *testing.T) {
	sub, err := Validate(validSubmission())
	require.Nil(t, err)
	assert.Equal(t, "Alice", sub.Name)
	assert.Equal(t, "alice@example.com", sub.Email)
}

func TestValidate_TrimsBeforeChecking(t *testing.T) {
	in := validSubmission()
	in.Name = "  Alice  "
	in.Email = " alice@example.com "

	sub, err := Validate(in)
	require.Nil(t, err)
	assert.Equal(t, "Alice", sub.Name)
	assert.Equal(t, "alice@example.com", sub.Email)
}

func TestValidate_Name(t *testing.T) {
	in := validSubmission()
	in.Name = strings.Repeat("A", 81)
	_, err := Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid name.", err.Message)

	in.Name = ""
	_, err = Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid name.", err.Message)

	in.Name = strings.Repeat("A", 80)
	_, err = Validate(in)
	assert.Nil(t, err)
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"a@b.co", true},
		{"alice@example.com", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
		{"@example.com", false},
		{"alice@", false},
		{"", false},
		{strings.Repeat("a", 116) + "@b.co", false}, // 121 characters, over the limit
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			in := validSubmission()
			in.Email = tt.email
			_, err := Validate(in)
			if tt.ok {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, "Invalid email.", err.Message)
			}
		})
	}
}

func TestValidate_Subject(t *testing.T) {
	in := validSubmission()
	in.Subject = strings.Repeat("s", 121)
	_, err := Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid subject.", err.Message)
}

func TestValidate_MessageLength(t *testing.T) {
	in := validSubmission()

	in.Message = strings.Repeat("m", 9)
	_, err := Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid message.", err.Message)

	in.Message = strings.Repeat("m", 2001)
	_, err = Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid message.", err.Message)

	in.Message = strings.Repeat("m", 2000)
	_, err = Validate(in)
	assert.Nil(t, err)
}

func TestValidate_LimitsAreCharacters(t *testing.T) {
	// Multibyte input counts by character, not byte
	in := validSubmission()
	in.Name = strings.Repeat("あ", 30) // 90 bytes, 30 characters
	_, err := Validate(in)
	assert.Nil(t, err)

	in = validSubmission()
	in.Name = strings.Repeat("あ", 81)
	_, err = Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid name.", err.Message)

	in = validSubmission()
	in.Message = strings.Repeat("あ", 4) // 12 bytes but only 4 characters
	_, err = Validate(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid message.", err.Message)

	in.Message = strings.Repeat("あ", 10)
	_, err = Validate(in)
	assert.Nil(t, err)

	in = validSubmission()
	in.Message = strings.Repeat("あ", 2000)
	_, err = Validate(in)
	assert.Nil(t, err)
}

func TestValidate_FirstFailureWins(t *testing.T) {
	// Everything invalid: the name error is reported
	_, err := Validate(domain.ContactSubmission{})
	require.NotNil(t, err)
	assert.Equal(t, "Invalid name.", err.Message)
}
