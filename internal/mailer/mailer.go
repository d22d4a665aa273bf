package mailer

import (
	"context"
	"fmt"
	"time"

	mail "github.com/wneessen/go-mail"
)

// subjectTag prefixes every relayed subject so portfolio mail is easy to
// filter in the destination inbox
const subjectTag = "[Portfolio Contact]"

// dialTimeout bounds the SMTP session so a slow relay cannot stall a request
const dialTimeout = 15 * time.Second

// Message is one validated contact submission ready for relay
type Message struct {
	Name     string
	Email    string
	Subject  string
	Body     string
	ClientIP string
}

// Mailer delivers one outbound message per successful call
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds the server-side relay credentials
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	To   string
	From string
}

// smtpMailer implements Mailer over an authenticated SMTP session
type smtpMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates a new SMTP-backed mailer
func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

// Send relays one contact message
func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	mm, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Pass),
		mail.WithTimeout(dialTimeout),
	}
	if m.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

// buildMessage assembles the outbound mail: tagged subject, reply-to set to
// the submitter so answering the relayed mail reaches them directly
func (m *smtpMailer) buildMessage(msg Message) (*mail.Msg, error) {
	mm := mail.NewMsg()
	if err := mm.FromFormat("Portfolio Contact", m.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := mm.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid destination address: %w", err)
	}
	if err := mm.ReplyTo(msg.Email); err != nil {
		return nil, fmt.Errorf("invalid reply-to address: %w", err)
	}
	mm.Subject(fmt.Sprintf("%s %s", subjectTag, msg.Subject))
	mm.SetBodyString(mail.TypeTextPlain, formatBody(msg))
	return mm, nil
}

// formatBody renders the relayed plain-text body: submitter identity first,
// then the message
func formatBody(msg Message) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nIP: %s\n\nMessage:\n%s",
		msg.Name, msg.Email, msg.ClientIP, msg.Body)
}
