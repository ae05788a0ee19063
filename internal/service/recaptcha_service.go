package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const siteverifyURL = "https://www.google.com/recaptcha/api/siteverify"

// VerifyResult is the interpreted outcome of a reCAPTCHA verification.
// Score is nil when the backend did not return one (non-v3 tokens).
type VerifyResult struct {
	Success bool
	Score   *float64
}

// Verifier checks a client-supplied reCAPTCHA token against the verification
// backend. Handlers depend on this interface so tests can substitute it.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*VerifyResult, error)
}

// RecaptchaService handles reCAPTCHA verification
type RecaptchaService struct {
	secretKey string
	endpoint  string
	client    *http.Client
}

// NewRecaptchaService creates a new reCAPTCHA service
func NewRecaptchaService(secretKey string) *RecaptchaService {
	return NewRecaptchaServiceWithEndpoint(secretKey, siteverifyURL)
}

// NewRecaptchaServiceWithEndpoint creates a service pointed at a specific
// verification endpoint.
func NewRecaptchaServiceWithEndpoint(secretKey, endpoint string) *RecaptchaService {
	return &RecaptchaService{
		secretKey: secretKey,
		endpoint:  endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// HasSecret reports whether a shared secret is provisioned. The feedback
// endpoint uses this to skip verification entirely when unconfigured.
func (s *RecaptchaService) HasSecret() bool {
	return s.secretKey != ""
}

// siteverifyResponse represents the response from Google's reCAPTCHA API
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       *float64 `json:"score,omitempty"`
	Action      string   `json:"action,omitempty"`
	ChallengeTS string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error-codes,omitempty"`
}

// Verify checks a token with the verification backend. Without a provisioned
// secret it reports failure without calling out; policy for that case (fail
// open vs fail closed) belongs to the caller. A non-nil error means the
// backend could not be reached or understood.
func (s *RecaptchaService) Verify(ctx context.Context, token, remoteIP string) (*VerifyResult, error) {
	if s.secretKey == "" {
		return &VerifyResult{Success: false}, nil
	}

	data := url.Values{}
	data.Set("secret", s.secretKey)
	data.Set("response", token)
	if remoteIP != "" {
		data.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build reCAPTCHA request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify reCAPTCHA: %w", err)
	}
	defer resp.Body.Close()

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse reCAPTCHA response: %w", err)
	}

	return &VerifyResult{
		Success: result.Success,
		Score:   result.Score,
	}, nil
}
