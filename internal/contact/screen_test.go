package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shaun/portfolio-api/internal/domain"
)

func TestScreen_Honeypot(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		website string
		want    ScreenResult
	}{
		{"empty passes", "", ScreenPass},
		{"whitespace only passes", "   ", ScreenPass},
		{"filled trips", "http://spam.example", ScreenBot},
		{"single character trips", "x", ScreenBot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := domain.ContactSubmission{
				Website:   tt.website,
				StartedAt: now.Add(-10 * time.Second).UnixMilli(),
			}
			assert.Equal(t, tt.want, Screen(sub, now))
		})
	}
}

func TestScreen_HoneypotWinsOverTiming(t *testing.T) {
	// A tripped honeypot short-circuits; the timing check never runs
	now := time.Now()
	sub := domain.ContactSubmission{Website: "bot", StartedAt: 0}
	assert.Equal(t, ScreenBot, Screen(sub, now))
}

func TestScreen_MinComposeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		elapsed time.Duration
		want    ScreenResult
	}{
		{"instant submit rejected", 0, ScreenTooFast},
		{"one second rejected", time.Second, ScreenTooFast},
		{"just under threshold rejected", 3499 * time.Millisecond, ScreenTooFast},
		{"at threshold accepted", 3500 * time.Millisecond, ScreenPass},
		{"slow compose accepted", time.Minute, ScreenPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := domain.ContactSubmission{
				StartedAt: now.Add(-tt.elapsed).UnixMilli(),
			}
			assert.Equal(t, tt.want, Screen(sub, now))
		})
	}
}

func TestScreen_MissingTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, ScreenTooFast, Screen(domain.ContactSubmission{}, now))
	assert.Equal(t, ScreenTooFast, Screen(domain.ContactSubmission{StartedAt: -5}, now))
}
