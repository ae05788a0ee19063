package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/meriadock/meriadock-api/internal/api/dto/v1/forms"
	"github.com/meriadock/meriadock-api/internal/api/sanitization"
	"github.com/meriadock/meriadock-api/internal/api/validation"
	"github.com/meriadock/meriadock-api/internal/config"
	"github.com/meriadock/meriadock-api/internal/logging"
	"github.com/meriadock/meriadock-api/internal/service"

	"github.com/gin-gonic/gin"
)

// generalScoreThreshold rejects v3 tokens scored below it. 0.45 itself
// passes.
const generalScoreThreshold = 0.45

// FormsHandler relays the general site forms (orientación, colaboración) to
// the Vinculación inbox. The folio is embedded in the email only; the caller
// gets a generic acknowledgment.
type FormsHandler struct {
	cfg      *config.Config
	verifier service.Verifier
	mailer   service.Mailer
}

func NewFormsHandler(cfg *config.Config, verifier service.Verifier, mailer service.Mailer) *FormsHandler {
	return &FormsHandler{
		cfg:      cfg,
		verifier: verifier,
		mailer:   mailer,
	}
}

func (h *FormsHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	var req forms.GeneralFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Validation below reports the first missing field for an empty
		// payload, same as for a well-formed one.
		logger.Warn("forms: unparseable request body: %v", err)
	}

	if msg := validation.CheckGeneralForm(&req); msg != "" {
		c.JSON(http.StatusBadRequest, forms.GeneralFormResponse{Message: msg})
		return
	}

	// Token is mandatory here; this endpoint fails closed.
	if req.RecaptchaToken == "" {
		c.JSON(http.StatusBadRequest, forms.GeneralFormResponse{
			Message: "reCAPTCHA no verificado. Por favor actualiza la página e intenta de nuevo.",
		})
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), req.RecaptchaToken, c.ClientIP())
	if err != nil {
		logger.Error("forms: error verifying reCAPTCHA: %v", err)
		c.JSON(http.StatusInternalServerError, forms.GeneralFormResponse{Message: "Error verificando reCAPTCHA."})
		return
	}
	if result == nil || !result.Success {
		logger.Warn("forms: reCAPTCHA failed for %s", c.ClientIP())
		c.JSON(http.StatusBadRequest, forms.GeneralFormResponse{Message: "reCAPTCHA no superado. Intenta de nuevo."})
		return
	}
	if result.Score != nil && *result.Score < generalScoreThreshold {
		logger.Warn("forms: reCAPTCHA low score: %.2f", *result.Score)
		c.JSON(http.StatusBadRequest, forms.GeneralFormResponse{Message: "reCAPTCHA indica comportamiento sospechoso (score bajo)."})
		return
	}

	if !h.cfg.HasSMTP() || !h.cfg.HasSMTPAuth() {
		logger.Error("forms: missing SMTP configuration in environment variables")
		c.JSON(http.StatusInternalServerError, forms.GeneralFormResponse{
			Message: "Configuración de correo no disponible. Contacta al administrador.",
		})
		return
	}

	folio := service.GenerateFolio(req.FormKey)
	m := buildGeneralMail(h.cfg, &req, folio, time.Now().UTC())

	if err := h.mailer.Send(c.Request.Context(), m); err != nil {
		logger.Error("forms: error sending mail for folio %s: %v", folio, err)
		c.JSON(http.StatusInternalServerError, forms.GeneralFormResponse{Message: "No se pudo enviar el correo. Intenta más tarde."})
		return
	}

	logger.Info("forms: relayed %s submission, folio %s", req.FormKey, folio)

	// The folio is withheld from the caller on purpose.
	c.JSON(http.StatusOK, forms.GeneralFormResponse{Message: "Enviado"})
}

// buildGeneralMail renders the notification for a validated general form
// submission. User-supplied fields are escaped in the HTML body.
func buildGeneralMail(cfg *config.Config, req *forms.GeneralFormRequest, folio string, sentAt time.Time) *service.OutgoingMail {
	timestamp := sentAt.Format("2006-01-02T15:04:05.000Z07:00")

	text := fmt.Sprintf(`
Folio: %s
Fecha/hora envío: %s
Formulario: %s
Tipo: %s

Descripción:
%s

Nombre remitente: %s
Correo remitente: %s
`, folio, timestamp, req.FormLabel, req.Tipo, req.Descripcion, req.Nombre, req.Correo)

	html := fmt.Sprintf(`
    <h2>%s</h2>
    <p><strong>Folio:</strong> %s</p>
    <p><strong>Fecha/hora envío:</strong> %s</p>
    <p><strong>Tipo:</strong> %s</p>
    <hr/>
    <h3>Descripción</h3>
    <p>%s</p>
    <hr/>
    <p><strong>Nombre remitente:</strong> %s</p>
    <p><strong>Correo remitente:</strong> %s</p>
  `,
		sanitization.EscapeHTML(req.FormLabel),
		folio,
		timestamp,
		sanitization.EscapeHTML(req.Tipo),
		sanitization.EscapeMultiline(req.Descripcion),
		sanitization.EscapeHTML(req.Nombre),
		sanitization.EscapeHTML(req.Correo),
	)

	return &service.OutgoingMail{
		FromName: "Centro Meriadock",
		From:     cfg.GeneralSender(),
		To:       cfg.GeneralRecipient(),
		Subject:  fmt.Sprintf(`[Folio %s] Nuevo mensaje desde "%s"`, folio, req.FormLabel),
		Text:     text,
		HTML:     html,
	}
}
