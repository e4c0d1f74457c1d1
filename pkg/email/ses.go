package email

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESSender delivers the booking field map through an AWS SES v2
// named template.
type SESSender struct {
	client       *sesv2.Client
	fromEmail    string
	recipient    string
	templateName string
}

// NewSESSender creates a sender for Amazon SES. Credentials are loaded
// from the environment.
func NewSESSender(ctx context.Context, region, fromEmail, recipient, templateName string) (*SESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESSender{
		client:       sesv2.NewFromConfig(cfg),
		fromEmail:    fromEmail,
		recipient:    recipient,
		templateName: templateName,
	}, nil
}

// Configured reports whether the sender has everything it needs.
func (s *SESSender) Configured() bool {
	return s.client != nil && s.fromEmail != "" && s.recipient != "" && s.templateName != ""
}

// Send renders the named SES template with the field map as template
// data and sends one message to the configured recipient.
func (s *SESSender) Send(ctx context.Context, params map[string]string) error {
	if !s.Configured() {
		return ErrNotConfigured
	}

	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode template data: %w", err)
	}
	templateData := string(data)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: &s.fromEmail,
		Destination: &types.Destination{
			ToAddresses: []string{s.recipient},
		},
		Content: &types.EmailContent{
			Template: &types.Template{
				TemplateName: &s.templateName,
				TemplateData: &templateData,
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("SES send failed: %w", err)
	}
	return nil
}
