// Package whatsapp implements the messaging.ChatSender contract against the
// WhatsApp Business Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/socx/event-announcer/internal/domain/messaging"
	"github.com/socx/event-announcer/internal/infra/config"
)

// E.164 phone number shape: +<countrycode><number>.
var phonePattern = regexp.MustCompile(`^\+\d{1,3}\d{1,14}$`)

// Client posts text messages to the Cloud API messages endpoint.
type Client struct {
	token         string
	phoneNumberID string
	baseURL       string
	httpClient    *http.Client
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		token:         cfg.Token,
		phoneNumberID: cfg.PhoneNumberID,
		baseURL:       cfg.APIBaseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

// SendText delivers one text message. Credentials are checked per attempt so
// that a missing token fails only that delivery, matching the dispatcher's
// containment policy.
func (c *Client) SendText(ctx context.Context, phone, text string) error {
	if c.token == "" {
		return &messaging.ConfigError{Transport: "whatsapp", Field: "API token"}
	}
	if c.phoneNumberID == "" {
		return &messaging.ConfigError{Transport: "whatsapp", Field: "sender phone number id"}
	}
	if !phonePattern.MatchString(phone) {
		return &messaging.ValidationError{Field: "recipient phone", Reason: fmt.Sprintf("%q is not in international +<countrycode><number> form", phone)}
	}
	if text == "" {
		return &messaging.ValidationError{Field: "message text", Reason: "must not be empty"}
	}

	payload, err := json.Marshal(textPayload{
		MessagingProduct: "whatsapp",
		To:               phone,
		Type:             "text",
		Text:             textBody{Body: text},
	})
	if err != nil {
		return fmt.Errorf("encoding whatsapp payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building whatsapp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending whatsapp message to %s: %w", phone, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp API returned %d for %s: %s", resp.StatusCode, phone, string(body))
	}
	return nil
}
