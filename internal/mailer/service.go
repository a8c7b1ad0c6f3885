// Package mailer provides outbound invitation mail delivery. Actual email
// transport is an external collaborator; this core only defines the
// boundary and ships a mock for development/testing.
package mailer

import (
	"context"
	"log"
	"time"
)

// InvitationMail carries everything the delivery collaborator needs to
// render and send an invitation email.
type InvitationMail struct {
	Recipient  string
	SenderName string
	TripName   string
	Code       string
	ShareLink  string
	ExpiresAt  time.Time
}

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks tripcraft/internal/mailer Service

// Service defines the interface for invitation mail delivery.
type Service interface {
	// SendInvitation delivers one invitation email.
	SendInvitation(ctx context.Context, mail InvitationMail) error
}

// MockService is a mock implementation of Service for development/testing.
type MockService struct {
	// SimulatedDelay is the time to simulate mail delivery.
	SimulatedDelay time.Duration
}

// NewMockService creates a new MockService with default settings.
func NewMockService() *MockService {
	return &MockService{
		SimulatedDelay: 200 * time.Millisecond,
	}
}

// SendInvitation simulates mail delivery.
func (s *MockService) SendInvitation(ctx context.Context, mail InvitationMail) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.SimulatedDelay):
	}

	log.Printf("Mock mail to %s: %s invited you to %q (%s)", mail.Recipient, mail.SenderName, mail.TripName, mail.ShareLink)
	return nil
}
