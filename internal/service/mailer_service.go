package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Timeouts for the SMTP dial and session. The relay is a synchronous part of
// the request, so hangs must be bounded.
const smtpTimeout = 20 * time.Second

// OutgoingMail is one notification email, fully rendered. It lives only for
// the duration of a single send.
type OutgoingMail struct {
	FromName     string
	From         string
	To           string
	ReplyTo      string
	EnvelopeFrom string
	Subject      string
	Text         string
	HTML         string
}

// Mailer dispatches a rendered notification. Handlers depend on this
// interface so the transport can be substituted in tests.
type Mailer interface {
	Send(ctx context.Context, m *OutgoingMail) error
}

// SMTPMailer sends mail through an SMTP relay. A fresh client is created per
// send; the service's volume is low enough that connection reuse is not worth
// sharing state across requests.
type SMTPMailer struct {
	host   string
	port   int
	user   string
	pass   string
	secure bool
}

// NewSMTPMailer creates a mailer for the given relay. Credentials may be
// empty for unauthenticated relays.
func NewSMTPMailer(host string, port int, user, pass string, secure bool) *SMTPMailer {
	return &SMTPMailer{
		host:   host,
		port:   port,
		user:   user,
		pass:   pass,
		secure: secure,
	}
}

// Send builds the message and delivers it in one SMTP session.
func (s *SMTPMailer) Send(ctx context.Context, m *OutgoingMail) error {
	if s.host == "" || s.port == 0 {
		return fmt.Errorf("smtp transport not configured")
	}

	msg, err := buildMessage(m)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTimeout(smtpTimeout),
	}
	if s.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.user),
			mail.WithPassword(s.pass),
		)
	}
	if s.secure || s.port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func buildMessage(m *OutgoingMail) (*mail.Msg, error) {
	msg := mail.NewMsg()

	var err error
	if m.FromName != "" {
		err = msg.FromFormat(m.FromName, m.From)
	} else {
		err = msg.From(m.From)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", m.From, err)
	}

	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to address %q: %w", m.ReplyTo, err)
		}
	}
	if m.EnvelopeFrom != "" {
		if err := msg.EnvelopeFrom(m.EnvelopeFrom); err != nil {
			return nil, fmt.Errorf("invalid envelope sender %q: %w", m.EnvelopeFrom, err)
		}
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	if m.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	}
	return msg, nil
}
