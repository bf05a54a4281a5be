// Package email sends transactional mail over SMTP.
package email

import (
	"os"
	"strconv"

	"freightmarket/internal/usecase/interfaces"

	"gopkg.in/gomail.v2"
)

// SMTPMailer delivers notification emails through a plain SMTP relay.
// Delivery is synchronous; callers that must not block wrap Send in a
// goroutine and log failures.
//
// Supported env vars:
//   - SMTP_HOST (default: localhost)
//   - SMTP_PORT (default: 587)
//   - SMTP_USERNAME, SMTP_PASSWORD (optional for local relays)
//   - SMTP_FROM (default: no-reply@freightmarket.local)
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailerFromEnv() *SMTPMailer {
	host := getenvDefault("SMTP_HOST", "localhost")
	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}

	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, getenvDefault("SMTP_USERNAME", ""), getenvDefault("SMTP_PASSWORD", "")),
		from:   getenvDefault("SMTP_FROM", "no-reply@freightmarket.local"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
