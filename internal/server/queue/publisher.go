// Package queue publishes domain events to a message broker so downstream
// services (mailers, analytics) can react to registrations and
// verification codes.
package queue

import "context"

// Exchange is the topic exchange all TalentConnect events go through.
const Exchange = "talentconnect.events"

// Routing keys.
const (
	KeyUserRegistered = "user.registered"
	KeyCodeIssued     = "verification.code.issued"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, key string, event any) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured and
// in tests.
type NoopPublisher struct{}

func NewNoop() Publisher { return NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, string, string, any) error { return nil }
func (NoopPublisher) Close() error                                       { return nil }

// UserRegistered is emitted after a successful account creation.
type UserRegistered struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// CodeIssued is emitted when a verification code is generated for a
// contact target. The code itself is delivered by the consumer (mail/SMS
// gateway), never logged here.
type CodeIssued struct {
	Channel string `json:"channel"`
	Target  string `json:"target"`
	Code    string `json:"code"`
}
