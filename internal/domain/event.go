package domain

import (
	"context"
	"time"
)

// Event represents a hosted event. Tags and Organizers are populated on
// retrieval; list queries return them empty.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	EventDate   time.Time `json:"event_date"`
	HostedBy    string    `json:"hosted_by"`
	TotalGuest  int       `json:"total_guest"`
	ReadTime    int       `json:"read_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Tags        []*Tag    `json:"tags,omitempty"`
	Organizers  []*User   `json:"organizers,omitempty"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description, slug, hostedBy string, eventDate time.Time, totalGuest, readTime int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Slug:        slug,
		EventDate:   eventDate,
		HostedBy:    hostedBy,
		TotalGuest:  totalGuest,
		ReadTime:    readTime,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventDetail is the retrieve projection: the event plus the view-only flags
// computed per request. None of the flags are stored.
// swagger:model EventDetail
type EventDetail struct {
	*Event
	HasSignUp       bool `json:"has_sign_up"`
	EventIsOpen     bool `json:"event_is_open"`
	IsAuthenticated bool `json:"is_authenticated"`
}

// EventFilter holds the field filters accepted by the event list endpoint.
type EventFilter struct {
	Tag      string
	HostedBy string
}

// EventUpdate holds the mutable event fields for partial updates. Nil fields
// are left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	TotalGuest  *int
	ReadTime    *int
}

// EventListConfig is the search/order configuration for GET /events.
var EventListConfig = ListConfig{
	SearchFields: []string{"title", "description"},
	OrderFields:  []string{"total_guest", "event_date", "read_time"},
	DefaultOrder: "event_date",
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event, tagNames []string) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// ListUpcoming returns events with event_date strictly after now, with the
	// total count before pagination.
	ListUpcoming(ctx context.Context, now time.Time, filter EventFilter, opts ListOptions, page PaginationParams) ([]*Event, int, error)
	Update(ctx context.Context, slug string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, slug string) error
}

// EventService defines the business logic for the event resource.
type EventService interface {
	ListUpcoming(ctx context.Context, filter EventFilter, opts ListOptions, page PaginationParams) ([]*Event, int, error)
	Create(ctx context.Context, hostID, title, description string, eventDate time.Time, totalGuest, readTime int, tagNames []string) (*Event, error)
	// GetBySlug returns the event with its per-request view flags. userID is
	// empty for anonymous callers.
	GetBySlug(ctx context.Context, slug, userID string) (*EventDetail, error)
	Update(ctx context.Context, slug, userID string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, slug, userID string) error
}
