package external

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"sportfields/internal/pkg/config"
	"sportfields/internal/pkg/errs"
)

var ErrMailNotConfigured = errs.New("smtp is not configured")

// SMTPMailer sends account mail over plain SMTP with auth.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string, expiresAt time.Time) error {
	if m.cfg.Host == "" {
		return ErrMailNotConfigured
	}

	subject := "Resetare parola"
	body := fmt.Sprintf(
		"Ai cerut resetarea parolei.\r\n\r\n"+
			"Deschide linkul pentru a seta o parola noua:\r\n%s\r\n\r\n"+
			"Linkul expira la %s.\r\n"+
			"Daca nu ai cerut resetarea, ignora acest mesaj.\r\n",
		resetLink,
		expiresAt.Format("15:04, 02.01.2006"),
	)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.cfg.From, to, subject, body,
	))

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	// net/smtp has no context support; honor cancellation by bailing
	// out before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return errs.Wrap(err, "send password reset mail")
	}
	return nil
}
