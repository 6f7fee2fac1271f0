package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	domain "github.com/dealwise/car-price-advisor/pkg/types"
)

const (
	colorRed    = 0xE74C3C // overpriced
	colorOrange = 0xE67E22 // slightly above market
	colorGreen  = 0x2ECC71 // good deal
	colorGray   = 0x95A5A6 // fair or unknown
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendAlert sends a contract assessment alert as a Discord embed.
func (d *DiscordNotifier) SendAlert(ctx context.Context, alert *AssessmentAlert) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(alert *AssessmentAlert) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Contract Alert: %s", alert.VehicleName),
		Color:       assessmentColor(alert.Assessment),
		Description: alert.Message,
		Fields: []discordEmbedField{
			{Name: "Contract Price", Value: alert.FinanceAmount, Inline: true},
			{Name: "Market Price", Value: alert.MarketPrice, Inline: true},
			{Name: "Fair Range", Value: alert.PriceRange, Inline: true},
			{Name: "Deviation", Value: fmt.Sprintf("%+.1f%%", alert.DeviationPercent), Inline: true},
			{Name: "Verdict", Value: string(alert.Assessment), Inline: true},
		},
	}

	if alert.VIN != "" {
		embed.Fields = append(embed.Fields,
			discordEmbedField{Name: "VIN", Value: alert.VIN, Inline: true},
		)
	}

	if alert.FairnessRating != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   "Fairness",
			Value:  fmt.Sprintf("%d/100 (%s)", alert.FairnessScore, alert.FairnessRating),
			Inline: true,
		})
	}

	return embed
}

func assessmentColor(a domain.Assessment) int {
	switch a {
	case domain.AssessmentOverpriced:
		return colorRed
	case domain.AssessmentSlightlyAbove:
		return colorOrange
	case domain.AssessmentGoodDeal:
		return colorGreen
	default:
		return colorGray
	}
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
