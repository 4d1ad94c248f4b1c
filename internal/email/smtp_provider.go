package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// BaseURL is the public URL verification links point at
	BaseURL string
}

func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.Port == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider is the gomail-backed Provider implementation.
type SMTPProvider struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPProvider builds a Provider sending through the given SMTP server.
func NewSMTPProvider(config SMTPConfig) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

// Send delivers the message through SMTP.
func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		from = m.FormatAddress(from, p.config.FromName)
	}

	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

// SendVerification delivers the email-verification link.
func (p *SMTPProvider) SendVerification(to string, token string) error {
	verificationLink := fmt.Sprintf("%s/api/users/verify?token=%s", p.config.BaseURL, token)

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Email Verification",
		Body:     fmt.Sprintf("Open %s to verify your email.", verificationLink),
		HTMLBody: fmt.Sprintf(`<p>Click <a href="%s">here</a> to verify your email.</p>`, verificationLink),
	})
}
