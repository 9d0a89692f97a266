// Package mailer delivers reset and verification emails. Delivery failures
// are logged by callers and never fail the originating request.
package mailer

import (
	"fmt"
	"net/smtp"

	"trek-booking/pkg/utils"

	"go.uber.org/zap"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTP sends through a plain-auth SMTP relay.
type SMTP struct {
	config utils.EmailConfig
}

func NewSMTP(config utils.EmailConfig) *SMTP {
	return &SMTP{config: config}
}

func (m *SMTP) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	msg := []byte("From: " + m.config.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" + body + "\r\n")

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}

// Log is the development mailer: it only logs, the caller returns the link
// in-band instead.
type Log struct {
	log *zap.Logger
}

func NewLog(log *zap.Logger) *Log {
	return &Log{log: log}
}

func (m *Log) Send(to, subject, body string) error {
	m.log.Info("Mail (dev mode, not sent)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
