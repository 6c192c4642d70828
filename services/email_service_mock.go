package services

import "sync"

// SentEmail records a single delivery made through the mock
type SentEmail struct {
	To       string
	Template EmailTemplate
}

// MockEmailService records sent emails instead of delivering them
type MockEmailService struct {
	sent []SentEmail
	mu   sync.Mutex
}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SetAsMockForTesting sets this mock as the global email service instance for testing
func (m *MockEmailService) SetAsMockForTesting() {
	SetEmailService(m)
}

// Send records the email without delivering it
func (m *MockEmailService) Send(to string, template EmailTemplate) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentEmail{To: to, Template: template})
	m.mu.Unlock()
	return nil
}

// SentEmails returns a copy of all recorded emails (for testing assertions)
func (m *MockEmailService) SentEmails() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()

	sent := make([]SentEmail, len(m.sent))
	copy(sent, m.sent)
	return sent
}

// Clear removes all recorded emails
func (m *MockEmailService) Clear() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}
