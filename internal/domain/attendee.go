package domain

import (
	"context"
	"time"
)

// Attendee records one user's signup to one event. At most one row exists per
// (event, user) pair; the attendees table carries a unique constraint on it.
// swagger:model Attendee
type Attendee struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAttendee returns a new Attendee. ID is set by the repository on create.
func NewAttendee(eventID, userID string, createdAt time.Time) *Attendee {
	return &Attendee{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// AttendeeWithUser bundles an attendee row with the user's public fields for
// the attendee list endpoint.
type AttendeeWithUser struct {
	Attendee *Attendee `json:"attendee"`
	User     *User     `json:"user"`
}

// AttendeeRepository defines storage for event signups.
type AttendeeRepository interface {
	// Create inserts the signup. A duplicate (event, user) pair is
	// ErrAlreadySignedUp, backed by the table's unique constraint.
	Create(ctx context.Context, a *Attendee) error
	Exists(ctx context.Context, eventID, userID string) (bool, error)
	ListByEventID(ctx context.Context, eventID string) ([]*AttendeeWithUser, error)
}

// AttendeeService defines signup and the attendee list.
type AttendeeService interface {
	// SignUp registers the user for the event named by slug. The event host
	// cannot sign up (ErrHostSignup) and repeat signups fail
	// (ErrAlreadySignedUp).
	SignUp(ctx context.Context, eventSlug, userID string) (*Attendee, error)
	ListByEventSlug(ctx context.Context, eventSlug string) ([]*AttendeeWithUser, error)
}
