package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/meriadock/meriadock-api/internal/api/dto/v1/forms"
)

// correoRegex accepts the simple local@domain.tld shape the site forms
// collect. Deliberately loose; the notification email is the real contact
// channel, not an account identity.
var correoRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("trimmed_min", validateTrimmedMin)
	v.RegisterValidation("correo", validateCorreo)
}

// validateTrimmedMin checks that the trimmed length of a string is at least
// the tag parameter.
func validateTrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= min
}

// validateCorreo checks the submitted contact email shape.
func validateCorreo(fl validator.FieldLevel) bool {
	return correoRegex.MatchString(fl.Field().String())
}

// Fixed client-facing messages, keyed by struct field. Checked in field
// declaration order; the first failing field's message is returned.
var generalMessages = map[string]string{
	"FormKey":     "Tipo de formulario inválido.",
	"FormLabel":   "Etiqueta de formulario inválida.",
	"Tipo":        "El campo 'Tipo' es obligatorio.",
	"Descripcion": "La descripción es obligatoria y debe tener al menos 6 caracteres.",
	"Nombre":      "El nombre es obligatorio.",
	"Correo":      "El correo electrónico es obligatorio y debe ser válido.",
}

var feedbackMessages = map[string]string{
	"Tipo":        "Selecciona el tipo de mensaje.",
	"Descripcion": "La descripción debe tener al menos 5 caracteres.",
}

const genericMessage = "Solicitud inválida."

// CheckGeneralForm validates a general form submission. It returns the empty
// string when the submission is valid, otherwise the message for the first
// failing field.
func CheckGeneralForm(req *forms.GeneralFormRequest) string {
	return firstMessage(validate.Struct(req), generalMessages)
}

// CheckFeedback validates a feedback submission.
func CheckFeedback(req *forms.FeedbackRequest) string {
	return firstMessage(validate.Struct(req), feedbackMessages)
}

func firstMessage(err error, messages map[string]string) string {
	if err == nil {
		return ""
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		if msg, ok := messages[validationErrors[0].StructField()]; ok {
			return msg
		}
	}
	return genericMessage
}
