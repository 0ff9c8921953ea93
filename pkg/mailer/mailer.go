package mailer

import (
	"fmt"
	"net/smtp"

	"theatre-api/pkg/utils"

	"go.uber.org/zap"
)

// Mailer sends plain-text mail to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through a configured SMTP relay.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(config utils.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
		auth: smtp.PlainAuth("", config.User, config.Password, config.Host),
		from: config.From,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// LogMailer writes mail to the log instead of sending it. Used in development
// when no SMTP relay is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(to, subject, body string) error {
	m.log.Info("Mail (log only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// NewFromConfig picks the SMTP mailer when a host is configured, otherwise
// falls back to log-only delivery.
func NewFromConfig(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		log.Warn("SMTP host not configured, mail will only be logged")
		return NewLogMailer(log)
	}
	return NewSMTPMailer(config)
}
