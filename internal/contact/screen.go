package contact

import (
	"strings"
	"time"

	"github.com/shaun/portfolio-api/internal/domain"
)

// MinComposeTime is the minimum elapsed time between the visitor opening the
// form and submitting it. Anything faster is treated as automated.
const MinComposeTime = 3500 * time.Millisecond

// ScreenResult classifies a submission before field validation
type ScreenResult int

const (
	// ScreenPass means the submission looks human and proceeds to validation
	ScreenPass ScreenResult = iota
	// ScreenBot means the honeypot was tripped; the caller reports success
	// without relaying so the bot learns nothing
	ScreenBot
	// ScreenTooFast means the form was submitted quicker than a human could
	// compose it, or without a start timestamp
	ScreenTooFast
)

// Screen runs the anti-bot checks: honeypot first, then minimum compose time
func Screen(sub domain.ContactSubmission, now time.Time) ScreenResult {
	if strings.TrimSpace(sub.Website) != "" {
		return ScreenBot
	}
	if sub.StartedAt <= 0 {
		return ScreenTooFast
	}
	elapsed := now.Sub(time.UnixMilli(sub.StartedAt))
	if elapsed < MinComposeTime {
		return ScreenTooFast
	}
	return ScreenPass
}
