package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pmtrec/portofolio/config"
	"github.com/pmtrec/portofolio/errs"
	"github.com/pmtrec/portofolio/models"
	"github.com/rs/zerolog/log"
)

const defaultEmailJSBaseURL = "https://api.emailjs.com"

// unspecifiedValue fills optional template params the sender left blank.
const unspecifiedValue = "Non spécifié"

// EmailJSRequest represents the request payload for the EmailJS send API.
type EmailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Mailer delivers contact form submissions through EmailJS.
type Mailer struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

// NewMailer reads the EmailJS service, template and public key from config.
func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		baseURL:    config.GetString(cfg, "EMAILJS_BASE_URL", defaultEmailJSBaseURL),
		serviceID:  config.GetString(cfg, "EMAILJS_SERVICE_ID", "porto"),
		templateID: config.GetString(cfg, "EMAILJS_TEMPLATE_ID", "template_daoioch"),
		publicKey:  config.GetString(cfg, "EMAILJS_PUBLIC_KEY", ""),
		client:     &http.Client{},
	}
}

// SendContactEmail renders req into the fixed template parameter set and
// posts it to EmailJS. Any non-200 response is an error; there is no retry,
// the caller surfaces the failure and the visitor resubmits.
func (m *Mailer) SendContactEmail(ctx context.Context, req models.ContactRequest) error {
	if m.publicKey == "" {
		return errs.NewConfigError("EMAILJS_PUBLIC_KEY")
	}

	budget := req.Budget
	if budget == "" {
		budget = unspecifiedValue
	}
	timeline := req.Timeline
	if timeline == "" {
		timeline = unspecifiedValue
	}

	payload := EmailJSRequest{
		ServiceID:  m.serviceID,
		TemplateID: m.templateID,
		UserID:     m.publicKey,
		TemplateParams: map[string]string{
			"from_name":  req.Name,
			"from_email": req.Email,
			"subject":    req.Subject,
			"message":    req.Message,
			"budget":     budget,
			"timeline":   timeline,
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/v1.0/email/send", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create EmailJS request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return errs.NewEmailDeliveryError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read EmailJS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return errs.NewEmailDeliveryError(fmt.Errorf("emailjs error (status %d): %s", resp.StatusCode, string(bodyBytes)))
	}

	log.Info().Str("fromEmail", req.Email).Msg("Successfully sent contact email via EmailJS")
	return nil
}
