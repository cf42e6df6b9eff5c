package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Mailer sends transactional email. The booking flow treats delivery as
// best-effort: a failed send never fails the booking.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one transactional email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Client talks to an external transactional-email HTTP API.
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
}

var _ Mailer = (*Client)(nil)

// NewClient creates a mail API client.
func NewClient(apiURL, apiKey, from string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{},
	}
}

// Send posts the message to the mail API.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload := struct {
		From string `json:"from"`
		Message
	}{From: c.from, Message: msg}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mail API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Nop discards every message. Used when no mail API is configured.
type Nop struct{}

func (Nop) Send(context.Context, Message) error { return nil }
