package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/blogapi/blog_backend/internal/apperrors"
)

// HTTPMailer delivers OTP emails through a Resend-compatible HTTP mail API.
type HTTPMailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

// NewHTTPMailer creates a mailer for the given API endpoint and sender address.
func NewHTTPMailer(apiKey, from, baseURL string) (*HTTPMailer, error) {
	if apiKey == "" {
		return nil, errors.New("mailer API key must not be empty")
	}
	return &HTTPMailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html"`
}

// SendOTP emails the activation code to the given address.
func (m *HTTPMailer) SendOTP(ctx context.Context, email string, otp string, validFor time.Duration) error {
	minutes := int(validFor.Minutes())
	body := sendRequest{
		From:    m.from,
		To:      []string{email},
		Subject: "Verify Your Account - BlogAPI OTP",
		Text:    fmt.Sprintf("Your OTP for BlogAPI is: %s. It is valid for %d minutes.", otp, minutes),
		HTML:    fmt.Sprintf("<p>Your OTP for BlogAPI is: <strong>%s</strong>. It is valid for %d minutes.</p>", otp, minutes),
	}

	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: mail API unreachable: %v", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return fmt.Errorf("%w: mail API returned %d: %s", apperrors.ErrUnavailable, resp.StatusCode, buf.String())
	}

	return nil
}
