package email

// Provider sends transactional mail. Services depend on this interface
// so delivery can be mocked in tests and local development.
type Provider interface {
	// Send delivers a plain email message
	Send(email *Email) error

	// SendVerification delivers the email-verification link for token
	SendVerification(email string, token string) error
}
