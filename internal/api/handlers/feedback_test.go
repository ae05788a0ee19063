package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/service"
)

func feedbackPayload() map[string]any {
	return map[string]any{
		"tipo":        "Denuncia",
		"descripcion": "Observé una conducta indebida en el programa",
	}
}

func feedbackResponse(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestFeedbackSubmitAnonymous(t *testing.T) {
	// No verification secret configured: the channel fails open and no
	// backend call may happen, whatever the token field holds.
	verifier := &stubVerifier{err: context.DeadlineExceeded}
	mailer := &stubMailer{}
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}
	h := NewFeedbackHandler(cfg, verifier, mailer)

	w := postJSON(t, h.Submit, feedbackPayload())

	require.Equal(t, http.StatusOK, w.Code)
	require.Zero(t, verifier.calls, "no secret configured, verification must be skipped")
	require.Len(t, mailer.sent, 1)

	resp := feedbackResponse(t, w.Body.Bytes())
	require.Equal(t, true, resp["ok"])

	folio, _ := resp["folio"].(string)
	_, err := time.Parse(time.RFC3339, folio)
	require.NoError(t, err, "folio must be a parseable ISO-8601 timestamp")

	sent := mailer.sent[0]
	require.Equal(t, "Queremos escucharte — Denuncia", sent.Subject)
	require.Contains(t, sent.Text, "Nombre remitente: Anónimo")
	require.Contains(t, sent.Text, "Correo remitente: No proporcionado")
	require.Contains(t, sent.Text, "Lugar: -")
	require.Contains(t, sent.Text, "Folio: "+folio)
	require.Empty(t, sent.ReplyTo)
	require.Equal(t, "denuncias@meriadock.org.mx", sent.To)
}

func TestFeedbackSubmitWithContactDetails(t *testing.T) {
	mailer := &stubMailer{}
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587, SMTPUser: "relay@example.com"}
	h := NewFeedbackHandler(cfg, &stubVerifier{}, mailer)

	payload := feedbackPayload()
	payload["nombre"] = "Luis"
	payload["correo"] = "luis@example.com"
	payload["lugar"] = "Oficina central"
	payload["fecha_evento"] = "2026-08-15"
	payload["personas_involucradas"] = "Dos coordinadores"
	w := postJSON(t, h.Submit, payload)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 1)

	sent := mailer.sent[0]
	require.Equal(t, "luis@example.com", sent.ReplyTo)
	require.Contains(t, sent.Text, "Lugar: Oficina central")
	require.Contains(t, sent.Text, "Fecha aproximada: 2026-08-15")
	require.Contains(t, sent.Text, "Personas involucradas: Dos coordinadores")
	// The authenticated account becomes both header and envelope sender.
	require.Equal(t, "relay@example.com", sent.From)
	require.Equal(t, "relay@example.com", sent.EnvelopeFrom)
}

func TestFeedbackSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantMsg string
	}{
		{"missing tipo", map[string]any{"descripcion": "algo pasó aquí"}, "Selecciona el tipo de mensaje."},
		{"short description", map[string]any{"tipo": "Queja", "descripcion": "ab"}, "La descripción debe tener al menos 5 caracteres."},
		{"empty body", map[string]any{}, "Selecciona el tipo de mensaje."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{}
			mailer := &stubMailer{}
			cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}
			h := NewFeedbackHandler(cfg, verifier, mailer)

			w := postJSON(t, h.Submit, tt.payload)

			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := feedbackResponse(t, w.Body.Bytes())
			require.Equal(t, false, resp["ok"])
			require.Equal(t, tt.wantMsg, resp["message"])
			require.Zero(t, verifier.calls)
			require.Empty(t, mailer.sent)
		})
	}
}

func TestFeedbackSubmitVerificationPolicies(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		token     string
		verifier  *stubVerifier
		wantCode  int
		wantCalls int
	}{
		{
			"secret and token, verification passes",
			"shh", "tok",
			&stubVerifier{result: &service.VerifyResult{Success: true}},
			http.StatusOK, 1,
		},
		{
			"secret and token, verification fails",
			"shh", "tok",
			&stubVerifier{result: &service.VerifyResult{Success: false}},
			http.StatusBadRequest, 1,
		},
		{
			"secret and token, backend error rejects",
			"shh", "tok",
			&stubVerifier{err: context.DeadlineExceeded},
			http.StatusBadRequest, 1,
		},
		{
			"secret without token skips",
			"shh", "",
			&stubVerifier{err: context.DeadlineExceeded},
			http.StatusOK, 0,
		},
		{
			"no secret with token skips",
			"", "tok",
			&stubVerifier{err: context.DeadlineExceeded},
			http.StatusOK, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				SMTPHost:        "smtp.example.com",
				SMTPPort:        587,
				RecaptchaSecret: tt.secret,
			}
			h := NewFeedbackHandler(cfg, tt.verifier, &stubMailer{})

			payload := feedbackPayload()
			if tt.token != "" {
				payload["recaptchaToken"] = tt.token
			}
			w := postJSON(t, h.Submit, payload)

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, tt.wantCalls, tt.verifier.calls)
			if tt.wantCode == http.StatusBadRequest {
				resp := feedbackResponse(t, w.Body.Bytes())
				require.Equal(t, "reCAPTCHA verification failed.", resp["message"])
			}
		})
	}
}

func TestFeedbackSubmitMissingTransport(t *testing.T) {
	mailer := &stubMailer{}
	h := NewFeedbackHandler(&config.Config{}, &stubVerifier{}, mailer)

	w := postJSON(t, h.Submit, feedbackPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := feedbackResponse(t, w.Body.Bytes())
	require.Equal(t, false, resp["ok"])
	require.Equal(t, "SMTP server not configured.", resp["message"])
	require.Empty(t, mailer.sent)
}

func TestFeedbackSubmitMailerFailure(t *testing.T) {
	mailer := &stubMailer{err: context.DeadlineExceeded}
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}
	h := NewFeedbackHandler(cfg, &stubVerifier{}, mailer)

	w := postJSON(t, h.Submit, feedbackPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := feedbackResponse(t, w.Body.Bytes())
	require.Equal(t, false, resp["ok"])
	require.Equal(t, "Error interno del servidor", resp["message"])
}

func TestFeedbackSubmitEscapesHTMLBody(t *testing.T) {
	mailer := &stubMailer{}
	cfg := &config.Config{SMTPHost: "smtp.example.com", SMTPPort: 587}
	h := NewFeedbackHandler(cfg, &stubVerifier{}, mailer)

	payload := feedbackPayload()
	payload["descripcion"] = "<script>alert(1)</script>\ncon saltos"
	payload["lugar"] = `sala "B" <anexo>`
	w := postJSON(t, h.Submit, payload)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 1)

	html := mailer.sent[0].HTML
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
	require.Contains(t, html, "&quot;B&quot;")
	require.Contains(t, html, "<br/>")
}
