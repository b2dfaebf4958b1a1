package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) send(ctx context.Context, payload webhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", errUnexpectedCode, resp.StatusCode)
	}
	return nil
}

// SendMessage sends a plain text message to the webhook.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, webhookPayload{Content: content})
}

// SendError sends an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorRed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.send(ctx, webhookPayload{Embeds: []Embed{embed}})
}

// SendInfo sends an informational embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.send(ctx, webhookPayload{Embeds: []Embed{{
		Title:       title,
		Description: description,
		Color:       colorBlue,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}}})
}

// ReportBug reports an unexpected server-side failure.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendError(ctx, "Bug Report", message, nil)
}

// Close is a no-op; the webhook client holds no persistent connection.
func (d *discordImpl) Close() error {
	return nil
}
