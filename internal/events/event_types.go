package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLoginSucceeded     EventType = "login_succeeded"
	EventLoginFailed        EventType = "login_failed"
	EventCustomerRegistered EventType = "customer_registered"
)

// Event represents an authentication event emitted by services.
// Payloads never carry passwords or hashes.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, username string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role"`
}

// LoginFailedPayload payload. Reason is for operators only and is never
// returned to the client.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

// CustomerRegisteredPayload payload.
type CustomerRegisteredPayload struct {
	CustomerID string `json:"customer_id"`
}
