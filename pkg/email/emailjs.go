package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultRelayURL = "https://api.emailjs.com/api/v1.0/email/send"

// RelayConfig holds the credentials of the browser-style email relay.
// All three identifiers plus the recipient must be present for the
// channel to be usable.
type RelayConfig struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Recipient  string
	BaseURL    string // defaults to the hosted relay
}

// RelaySender sends templated email through an EmailJS-compatible
// REST relay.
type RelaySender struct {
	cfg    RelayConfig
	client *http.Client
}

// NewRelaySender creates a relay sender. The HTTP client carries a
// timeout so a hung relay cannot pin a submission forever.
func NewRelaySender(cfg RelayConfig) *RelaySender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultRelayURL
	}
	return &RelaySender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether all relay credentials are present.
func (s *RelaySender) Configured() bool {
	return s.cfg.ServiceID != "" &&
		s.cfg.TemplateID != "" &&
		s.cfg.PublicKey != "" &&
		s.cfg.Recipient != ""
}

type relayRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the field map to the relay's send endpoint.
func (s *RelaySender) Send(ctx context.Context, params map[string]string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	templateParams := make(map[string]string, len(params)+1)
	for k, v := range params {
		templateParams[k] = v
	}
	templateParams["to_email"] = s.cfg.Recipient

	body, err := json.Marshal(relayRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     s.cfg.TemplateID,
		UserID:         s.cfg.PublicKey,
		TemplateParams: templateParams,
	})
	if err != nil {
		return fmt.Errorf("failed to encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay returned status %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
