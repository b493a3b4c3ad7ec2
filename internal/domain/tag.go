package domain

import "context"

// Tag represents a named label attached to events.
// swagger:model Tag
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TagRepository defines storage for tags and event–tag links.
type TagRepository interface {
	ListAll(ctx context.Context) ([]*Tag, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Tag, error)
}

// TagService defines the tag list.
type TagService interface {
	ListAll(ctx context.Context) ([]*Tag, error)
}
