package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// Mailer envia e-mails transacionais. Falha de envio nunca desfaz o
// agendamento: quem chama loga e segue.
type Mailer interface {
	SendAppointmentConfirmation(ctx context.Context, data ConfirmationData) error
}

type ResendClient struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient devolve nil sem chave configurada; o chamador troca por
// um NoopMailer.
func NewResendClient(apiKey, from string) *ResendClient {
	if strings.TrimSpace(apiKey) == "" {
		return nil
	}
	if strings.TrimSpace(from) == "" {
		from = "Hartmann Barbearia <onboarding@resend.dev>"
	}
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		endpoint:   defaultResendEndpoint,
		httpClient: &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *ResendClient) SendAppointmentConfirmation(ctx context.Context, data ConfirmationData) error {
	if c == nil {
		return errors.New("resend client is nil")
	}

	htmlBody, err := buildAppointmentConfirmationHTML(data)
	if err != nil {
		return err
	}

	return c.sendHTML(ctx, data.ClientEmail, "✂️ Agendamento Confirmado!", htmlBody)
}

func (c *ResendClient) sendHTML(ctx context.Context, toEmail, subject, htmlBody string) error {
	if strings.TrimSpace(toEmail) == "" {
		return errors.New("missing recipient email")
	}

	payload := resendSendRequest{
		From:    c.from,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    htmlBody,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("resend marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("resend create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("resend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// NoopMailer descarta tudo (ambiente sem RESEND_API_KEY).
type NoopMailer struct{}

func (NoopMailer) SendAppointmentConfirmation(ctx context.Context, data ConfirmationData) error {
	return nil
}
