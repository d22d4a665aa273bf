package api

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shaun/portfolio-api/internal/aggregator"
	"github.com/shaun/portfolio-api/internal/collector"
	"github.com/shaun/portfolio-api/internal/config"
	"github.com/shaun/portfolio-api/internal/contact"
	"github.com/shaun/portfolio-api/internal/domain"
	apperrors "github.com/shaun/portfolio-api/internal/errors"
	"github.com/shaun/portfolio-api/internal/mailer"
	"github.com/shaun/portfolio-api/internal/ratelimit"
)

// Handler handles API requests
type Handler struct {
	limiter    *ratelimit.Limiter
	mailer     mailer.Mailer
	aggregator aggregator.Aggregator
	cfg        *config.Config
}

// NewHandler creates a new API handler
func NewHandler(limiter *ratelimit.Limiter, m mailer.Mailer, agg aggregator.Aggregator, cfg *config.Config) *Handler {
	return &Handler{
		limiter:    limiter,
		mailer:     m,
		aggregator: agg,
		cfg:        cfg,
	}
}

// Contact handles a contact-form submission
// POST /api/contact
func (h *Handler) Contact(c *gin.Context) {
	// Origin check (helps block random third-party posts)
	origin := c.GetHeader("Origin")
	if h.cfg.AllowedOrigin != "" && origin != "" && origin != h.cfg.AllowedOrigin {
		respondContactError(c, apperrors.NewForbiddenError("Forbidden"))
		return
	}

	identity := clientIdentity(c)
	if !h.limiter.Allow(identity) {
		respondContactError(c, apperrors.NewRateLimitedError("Too many requests. Try again later."))
		return
	}

	// An unparseable body behaves like an empty one and fails the timing
	// screen below
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		sub = domain.ContactSubmission{}
	}

	switch contact.Screen(sub, time.Now()) {
	case contact.ScreenBot:
		// Pretend success so the bot does not learn it was detected
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	case contact.ScreenTooFast:
		respondContactError(c, apperrors.NewBadRequestError("Please try again."))
		return
	}

	sub, vErr := contact.Validate(sub)
	if vErr != nil {
		respondContactError(c, vErr)
		return
	}

	if !h.cfg.MailConfigured() {
		respondContactError(c, apperrors.NewUnavailableError("Email service not configured."))
		return
	}

	relayID := uuid.New().String()
	msg := mailer.Message{
		Name:     sub.Name,
		Email:    sub.Email,
		Subject:  sub.Subject,
		Body:     sub.Message,
		ClientIP: identity,
	}
	if err := h.mailer.Send(c.Request.Context(), msg); err != nil {
		// Cause stays server-side only; credentials and relay details must
		// never reach the client
		log.Printf("contact relay %s failed: %v", relayID, err)
		respondContactError(c, apperrors.NewInternalError("Failed to send email. Please try again.", err))
		return
	}

	log.Printf("contact relay %s delivered", relayID)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Repos returns the aggregated repository list
// GET /api/github/repos
func (h *Handler) Repos(c *gin.Context) {
	// CDN caching hint; the in-process cache stays authoritative for
	// freshness
	c.Header("Cache-Control", "s-maxage=1200, stale-while-revalidate=3600")

	results, err := h.aggregator.Repositories(c.Request.Context())
	if err != nil {
		log.Printf("repository aggregation failed: %v", err)
		var se *collector.StatusError
		if errors.As(err, &se) {
			c.JSON(se.StatusCode, gin.H{"error": "Failed to list repositories."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error."})
		return
	}

	// Flatten: skipped entries carry no summary and are not exposed
	out := make([]domain.RepositorySummary, 0, len(results))
	for _, r := range results {
		if r.Status == domain.RepoStatusSkipped {
			continue
		}
		out = append(out, r.Summary)
	}

	c.JSON(http.StatusOK, out)
}

// HealthCheck returns the service status
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// clientIdentity derives the rate-limit key: first forwarded-for address,
// then the connection address, then a shared "unknown" sentinel
func clientIdentity(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil && host != "" {
		return host
	}
	if c.Request.RemoteAddr != "" {
		return c.Request.RemoteAddr
	}
	return "unknown"
}

// respondContactError sends a contact-endpoint error response
func respondContactError(c *gin.Context, err *apperrors.AppError) {
	c.JSON(httpStatus(err.Code), gin.H{"ok": false, "error": err.Message})
}

// httpStatus maps an application error code onto an HTTP status
func httpStatus(code apperrors.ErrCode) int {
	switch code {
	case apperrors.ErrCodeBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case apperrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		// Misconfiguration and relay failures both surface as 500; the
		// message tells the operator which it was
		return http.StatusInternalServerError
	}
}
