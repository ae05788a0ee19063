package config

// Organizational defaults used when no override is configured.
const (
	defaultDomain            = "meriadock.org.mx"
	defaultGeneralSender     = "mail@meriadock.org.mx"
	defaultGeneralRecipient  = "vinculacion@meriadock.org.mx"
	defaultFeedbackRecipient = "denuncias@meriadock.org.mx"
)

// FirstNonEmpty returns the first non-empty value, evaluating candidates in
// priority order. It is the single mechanism behind every address fallback
// chain below.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// GeneralRecipient resolves the destination address for the general forms
// (Vinculación inbox).
func (c *Config) GeneralRecipient() string {
	return FirstNonEmpty(c.VinculacionEmail, c.EmailTo, c.SMTPTo, c.SMTPToAddress, defaultGeneralRecipient)
}

// GeneralSender resolves the sender address for the general forms.
func (c *Config) GeneralSender() string {
	return FirstNonEmpty(c.EmailFrom, defaultGeneralSender)
}

// FeedbackRecipient resolves the destination address for the feedback channel.
func (c *Config) FeedbackRecipient() string {
	return FirstNonEmpty(c.EscucharteTo, defaultFeedbackRecipient)
}

// FeedbackSender resolves the sender address for the feedback channel. The
// authenticated transport account wins so the upstream relay does not reject
// the envelope sender.
func (c *Config) FeedbackSender() string {
	return FirstNonEmpty(c.SMTPUser, c.EscucharteFrom, "no-reply@"+c.PublicHost())
}
