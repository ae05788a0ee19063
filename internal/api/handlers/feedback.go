package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/meriadock/meriadock-api/internal/api/dto/v1/forms"
	"github.com/meriadock/meriadock-api/internal/api/sanitization"
	"github.com/meriadock/meriadock-api/internal/api/validation"
	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/logging"
	"github.com/meriadock/meriadock-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Display placeholders for omitted optional fields.
const (
	placeholderAnonymous  = "Anónimo"
	placeholderNoEmail    = "No proporcionado"
	placeholderBlankField = "-"
)

// FeedbackHandler relays the anonymous feedback/whistleblower channel.
// Unlike the general forms it fails open on missing reCAPTCHA configuration:
// a misconfigured server must not silence a whistleblower.
type FeedbackHandler struct {
	cfg      *config.Config
	verifier service.Verifier
	mailer   service.Mailer
}

func NewFeedbackHandler(cfg *config.Config, verifier service.Verifier, mailer service.Mailer) *FeedbackHandler {
	return &FeedbackHandler{
		cfg:      cfg,
		verifier: verifier,
		mailer:   mailer,
	}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	var req forms.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("feedback: unparseable request body: %v", err)
	}

	if msg := validation.CheckFeedback(&req); msg != "" {
		c.JSON(http.StatusBadRequest, forms.FeedbackResponse{OK: false, Message: msg})
		return
	}

	// Verification is soft here: no secret or no token means skip. Only an
	// attempted verification that fails rejects the submission.
	if h.cfg.RecaptchaSecret != "" && req.RecaptchaToken != "" {
		result, err := h.verifier.Verify(c.Request.Context(), req.RecaptchaToken, c.ClientIP())
		if err != nil || result == nil || !result.Success {
			if err != nil {
				logger.Warn("feedback: reCAPTCHA verify error: %v", err)
			}
			c.JSON(http.StatusBadRequest, forms.FeedbackResponse{OK: false, Message: "reCAPTCHA verification failed."})
			return
		}
	}

	if !h.cfg.HasSMTP() {
		logger.Error("feedback: SMTP no configurado: falta SMTP_HOST/SMTP_PORT en el entorno")
		c.JSON(http.StatusInternalServerError, forms.FeedbackResponse{OK: false, Message: "SMTP server not configured."})
		return
	}

	folio := service.TimestampFolio()
	m := buildFeedbackMail(h.cfg, &req, folio)

	if err := h.mailer.Send(c.Request.Context(), m); err != nil {
		logger.Error("feedback: error sending mail for folio %s: %v", folio, err)
		c.JSON(http.StatusInternalServerError, forms.FeedbackResponse{OK: false, Message: "Error interno del servidor"})
		return
	}

	logger.Info("feedback: relayed %s submission, folio %s", req.Tipo, folio)

	c.JSON(http.StatusOK, forms.FeedbackResponse{OK: true, Folio: folio})
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// buildFeedbackMail renders the notification for a validated feedback
// submission. User-supplied fields are escaped in the HTML body.
func buildFeedbackMail(cfg *config.Config, req *forms.FeedbackRequest, folio string) *service.OutgoingMail {
	from := cfg.FeedbackSender()
	to := cfg.FeedbackRecipient()

	nombre := orPlaceholder(req.Nombre, placeholderAnonymous)
	correo := orPlaceholder(req.Correo, placeholderNoEmail)

	textLines := []string{
		"Tipo: " + req.Tipo,
		"Descripción: " + req.Descripcion,
		"Lugar: " + orPlaceholder(req.Lugar, placeholderBlankField),
		"Fecha aproximada: " + orPlaceholder(req.FechaEvento, placeholderBlankField),
		"Personas involucradas: " + orPlaceholder(req.PersonasInvolucradas, placeholderBlankField),
		"Nombre remitente: " + nombre,
		"Correo remitente: " + correo,
		"Folio: " + folio,
	}

	html := fmt.Sprintf(`
      <h2>Queremos escucharte — %s</h2>
      <p><strong>Descripción:</strong><br/>%s</p>
      <p><strong>Lugar:</strong> %s</p>
      <p><strong>Fecha (aprox):</strong> %s</p>
      <p><strong>Personas involucradas:</strong> %s</p>
      <p><strong>Remitente:</strong> %s (%s)</p>
      <p><strong>Folio:</strong> %s</p>
      <hr/>
      <p style="font-size:0.9em;color:#666">Enviado desde %s</p>
    `,
		sanitization.EscapeHTML(req.Tipo),
		sanitization.EscapeMultiline(req.Descripcion),
		sanitization.EscapeHTML(orPlaceholder(req.Lugar, placeholderBlankField)),
		sanitization.EscapeHTML(orPlaceholder(req.FechaEvento, placeholderBlankField)),
		sanitization.EscapeHTML(orPlaceholder(req.PersonasInvolucradas, placeholderBlankField)),
		sanitization.EscapeHTML(nombre),
		sanitization.EscapeHTML(correo),
		folio,
		from,
	)

	return &service.OutgoingMail{
		From:         from,
		To:           to,
		ReplyTo:      req.Correo,
		EnvelopeFrom: from,
		Subject:      "Queremos escucharte — " + req.Tipo,
		Text:         strings.Join(textLines, "\n"),
		HTML:         html,
	}
}
