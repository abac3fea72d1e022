// Package email implements the messaging.EmailSender contract over SMTP.
package email

import (
	"context"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/socx/event-announcer/internal/domain/messaging"
	"github.com/socx/event-announcer/internal/infra/config"
)

// Standard local@domain.tld shape.
var addressPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Client sends HTML email through a configured SMTP server.
type Client struct {
	dialer     *gomail.Dialer
	user       string
	senderName string
}

// NewClient validates the SMTP configuration once and builds the client.
// A missing required field surfaces as *messaging.ConfigError before any
// network activity.
func NewClient(cfg config.SMTPConfig) (*Client, error) {
	switch {
	case cfg.Host == "":
		return nil, &messaging.ConfigError{Transport: "email", Field: "host"}
	case cfg.Port == 0:
		return nil, &messaging.ConfigError{Transport: "email", Field: "port"}
	case cfg.User == "":
		return nil, &messaging.ConfigError{Transport: "email", Field: "user"}
	case cfg.Password == "":
		return nil, &messaging.ConfigError{Transport: "email", Field: "password"}
	case cfg.SenderName == "":
		return nil, &messaging.ConfigError{Transport: "email", Field: "sender name"}
	}

	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.SSL = cfg.Secure

	return &Client{
		dialer:     dialer,
		user:       cfg.User,
		senderName: cfg.SenderName,
	}, nil
}

// Send delivers one HTML message. Recipient address, subject and body are
// validated per call; failures there are *messaging.ValidationError and
// never reach the SMTP server.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !addressPattern.MatchString(to) {
		return &messaging.ValidationError{Field: "recipient address", Reason: fmt.Sprintf("%q is not a valid email address", to)}
	}
	if subject == "" {
		return &messaging.ValidationError{Field: "subject", Reason: "must not be empty"}
	}
	if htmlBody == "" {
		return &messaging.ValidationError{Field: "body", Reason: "must not be empty"}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.user, c.senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email to %s: %w", to, err)
	}
	return nil
}
