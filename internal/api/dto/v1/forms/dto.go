package forms

// GeneralFormRequest represents a submission from one of the general site
// forms (OR = solicitud de orientación, CO = colaboración, PA = reserved).
// Field order matters: validation reports the first failing field.
type GeneralFormRequest struct {
	FormKey        string `json:"formKey" validate:"required,oneof=OR CO PA"`
	FormLabel      string `json:"formLabel" validate:"required"`
	Tipo           string `json:"tipo" validate:"required"`
	Descripcion    string `json:"descripcion" validate:"required,trimmed_min=6"`
	Nombre         string `json:"nombre" validate:"required,trimmed_min=2"`
	Correo         string `json:"correo" validate:"required,correo"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// GeneralFormResponse is the response body for the general forms endpoint.
// The folio is deliberately never included here.
type GeneralFormResponse struct {
	Message string `json:"message"`
}

// FeedbackRequest represents a submission to the anonymous feedback channel.
// Everything past the description is optional so whistleblowers can stay
// anonymous.
type FeedbackRequest struct {
	Tipo                 string `json:"tipo" validate:"required"`
	Descripcion          string `json:"descripcion" validate:"required,trimmed_min=5"`
	Lugar                string `json:"lugar"`
	FechaEvento          string `json:"fecha_evento"`
	PersonasInvolucradas string `json:"personas_involucradas"`
	Nombre               string `json:"nombre"`
	Correo               string `json:"correo"`
	RecaptchaToken       string `json:"recaptchaToken"`
}

// FeedbackResponse is the response body for the feedback endpoint. On success
// it carries the folio the sender can quote in a follow-up.
type FeedbackResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Folio   string `json:"folio,omitempty"`
}
