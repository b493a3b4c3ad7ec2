package domain

import (
	"context"
	"time"
)

// SessionStatus is the lifecycle state of a session. The three values
// partition an event's sessions; transitions happen outside this API.
type SessionStatus string

const (
	StatusDraft    SessionStatus = "Draft"
	StatusAccepted SessionStatus = "Accepted"
	StatusDenied   SessionStatus = "Denied"
)

// Valid reports whether s is one of the three known statuses.
func (s SessionStatus) Valid() bool {
	return s == StatusDraft || s == StatusAccepted || s == StatusDenied
}

// Session represents a talk proposal belonging to an event.
// swagger:model Session
type Session struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Slug        string        `json:"slug"`
	SessionType string        `json:"session_type"`
	Status      SessionStatus `json:"status"`
	ProposedBy  string        `json:"proposed_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewSession returns a new Draft session. ID is set by the repository on create.
func NewSession(eventID, title, description, slug, sessionType, proposedBy string, createdAt, updatedAt time.Time) *Session {
	return &Session{
		EventID:     eventID,
		Title:       title,
		Description: description,
		Slug:        slug,
		SessionType: sessionType,
		Status:      StatusDraft,
		ProposedBy:  proposedBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Speaker is the speaker projection of an accepted session: the talk plus the
// proposer's public fields.
// swagger:model Speaker
type Speaker struct {
	SessionID    string `json:"session_id"`
	SessionTitle string `json:"session_title"`
	SessionSlug  string `json:"session_slug"`
	SessionType  string `json:"session_type"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	LastName     string `json:"last_name"`
}

// SessionUpdate holds the mutable session fields for partial updates. Nil
// fields are left unchanged. Status is deliberately absent.
type SessionUpdate struct {
	Title       *string
	Description *string
	SessionType *string
}

// SessionListConfig is the search/order configuration shared by the three
// status-scoped session list endpoints.
var SessionListConfig = ListConfig{
	SearchFields: []string{"title", "description"},
	OrderFields:  []string{"title", "session_type"},
	DefaultOrder: "title",
}

// SessionRepository defines the interface for session storage. All lookups are
// scoped to a parent event and a status.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByEventSlug(ctx context.Context, eventID, slug string, status SessionStatus) (*Session, error)
	ListByEvent(ctx context.Context, eventID string, status SessionStatus, opts ListOptions) ([]*Session, error)
	Update(ctx context.Context, id string, upd SessionUpdate) (*Session, error)
	Delete(ctx context.Context, id string) error
	// ListSpeakersByEvent returns the speaker projection of the event's
	// accepted sessions.
	ListSpeakersByEvent(ctx context.Context, eventID string) ([]*Speaker, error)
}

// SessionService defines the business logic for the status-scoped session
// surfaces. eventSlug names the parent event; a missing parent is ErrNotFound.
type SessionService interface {
	List(ctx context.Context, eventSlug string, status SessionStatus, opts ListOptions) ([]*Session, error)
	Get(ctx context.Context, eventSlug, slug string, status SessionStatus) (*Session, error)
	CreateDraft(ctx context.Context, eventSlug, proposerID, title, description, sessionType string) (*Session, error)
	UpdateDraft(ctx context.Context, eventSlug, slug, userID string, upd SessionUpdate) (*Session, error)
	DeleteDraft(ctx context.Context, eventSlug, slug, userID string) error
	ListSpeakers(ctx context.Context, eventSlug string) ([]*Speaker, error)
}
