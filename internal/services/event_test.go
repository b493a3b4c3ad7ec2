package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventcollective/internal/domain"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestEventService_Create(t *testing.T) {
	eventRepo := &mockEventRepository{eventsBySlug: map[string]*domain.Event{}}
	svc := NewEventService(eventRepo, &mockTagRepository{}, &mockUserRepository{}, &mockAttendeeRepository{}).(*eventService)
	svc.now = fixedNow

	ev, err := svc.Create(context.Background(), "user-1", "Go Meetup 2025", "talks about Go",
		fixedNow().Add(48*time.Hour), 100, 5, []string{"go", "meetup"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if ev.Slug != "go-meetup-2025" {
		t.Errorf("slug = %q, want %q", ev.Slug, "go-meetup-2025")
	}
	if ev.HostedBy != "user-1" {
		t.Errorf("hosted_by = %q, want %q", ev.HostedBy, "user-1")
	}
	if len(eventRepo.created) != 1 {
		t.Fatalf("created %d events, want 1", len(eventRepo.created))
	}
}

func TestEventService_GetBySlug_Flags(t *testing.T) {
	upcoming := &domain.Event{ID: "ev-1", Slug: "upcoming", HostedBy: "host-1", EventDate: fixedNow().Add(24 * time.Hour)}
	past := &domain.Event{ID: "ev-2", Slug: "past", HostedBy: "host-1", EventDate: fixedNow().Add(-24 * time.Hour)}

	eventRepo := &mockEventRepository{eventsBySlug: map[string]*domain.Event{
		"upcoming": upcoming,
		"past":     past,
	}}
	attendeeRepo := &mockAttendeeRepository{existing: map[string]bool{"ev-1:user-1": true}}

	svc := NewEventService(eventRepo, &mockTagRepository{byEvent: map[string][]*domain.Tag{}}, &mockUserRepository{organizers: map[string][]*domain.User{}}, attendeeRepo).(*eventService)
	svc.now = fixedNow

	tests := []struct {
		name            string
		slug            string
		userID          string
		hasSignUp       bool
		eventIsOpen     bool
		isAuthenticated bool
	}{
		{"signed up user on open event", "upcoming", "user-1", true, true, true},
		{"other user on open event", "upcoming", "user-2", false, true, true},
		{"anonymous on open event", "upcoming", "", false, true, false},
		{"anonymous on past event", "past", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := svc.GetBySlug(context.Background(), tt.slug, tt.userID)
			if err != nil {
				t.Fatalf("GetBySlug() error = %v", err)
			}
			if detail.HasSignUp != tt.hasSignUp {
				t.Errorf("HasSignUp = %v, want %v", detail.HasSignUp, tt.hasSignUp)
			}
			if detail.EventIsOpen != tt.eventIsOpen {
				t.Errorf("EventIsOpen = %v, want %v", detail.EventIsOpen, tt.eventIsOpen)
			}
			if detail.IsAuthenticated != tt.isAuthenticated {
				t.Errorf("IsAuthenticated = %v, want %v", detail.IsAuthenticated, tt.isAuthenticated)
			}
		})
	}
}

func TestEventService_GetBySlug_NotFound(t *testing.T) {
	eventRepo := &mockEventRepository{eventsBySlug: map[string]*domain.Event{}}
	svc := NewEventService(eventRepo, &mockTagRepository{}, &mockUserRepository{}, &mockAttendeeRepository{})

	_, err := svc.GetBySlug(context.Background(), "missing", "")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetBySlug() error = %v, want ErrNotFound", err)
	}
}

func TestEventService_Update_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{"host can update", "host-1", nil},
		{"non-host is forbidden", "user-2", domain.ErrForbidden},
		{"anonymous is forbidden", "", domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRepo := &mockEventRepository{eventsBySlug: map[string]*domain.Event{
				"my-event": {ID: "ev-1", Slug: "my-event", HostedBy: "host-1"},
			}}
			svc := NewEventService(eventRepo, &mockTagRepository{}, &mockUserRepository{}, &mockAttendeeRepository{})

			title := "Renamed"
			_, err := svc.Update(context.Background(), "my-event", tt.userID, domain.EventUpdate{Title: &title})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	eventRepo := &mockEventRepository{eventsBySlug: map[string]*domain.Event{
		"my-event": {ID: "ev-1", Slug: "my-event", HostedBy: "host-1"},
	}}
	svc := NewEventService(eventRepo, &mockTagRepository{}, &mockUserRepository{}, &mockAttendeeRepository{})

	if err := svc.Delete(context.Background(), "my-event", "user-2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Delete() error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), "my-event", "host-1"); err != nil {
		t.Fatalf("Delete() by host error = %v", err)
	}
	if len(eventRepo.deletedSlugs) != 1 || eventRepo.deletedSlugs[0] != "my-event" {
		t.Errorf("deleted slugs = %v, want [my-event]", eventRepo.deletedSlugs)
	}
}

func TestEventService_ListUpcoming(t *testing.T) {
	eventRepo := &mockEventRepository{listed: []*domain.Event{
		{ID: "ev-1", Slug: "one"},
		{ID: "ev-2", Slug: "two"},
	}}
	svc := NewEventService(eventRepo, &mockTagRepository{}, &mockUserRepository{}, &mockAttendeeRepository{})

	events, total, err := svc.ListUpcoming(context.Background(), domain.EventFilter{}, domain.ListOptions{}, domain.PaginationParams{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListUpcoming() error = %v", err)
	}
	if total != 2 || len(events) != 2 {
		t.Errorf("got %d events (total %d), want 2", len(events), total)
	}
}
