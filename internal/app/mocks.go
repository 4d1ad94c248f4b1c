package app

import "crudboard_backend/internal/email"

// MockEmailProvider is used in tests and local development when no
// SMTP server is configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }

func (m *MockEmailProvider) SendVerification(email string, token string) error { return nil }
