package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventcollective/internal/domain"
)

type eventService struct {
	eventRepo    domain.EventRepository
	tagRepo      domain.TagRepository
	userRepo     domain.UserRepository
	attendeeRepo domain.AttendeeRepository
	now          func() time.Time
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	tagRepo domain.TagRepository,
	userRepo domain.UserRepository,
	attendeeRepo domain.AttendeeRepository,
) domain.EventService {
	return &eventService{
		eventRepo:    eventRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		attendeeRepo: attendeeRepo,
		now:          time.Now,
	}
}

func (s *eventService) ListUpcoming(ctx context.Context, filter domain.EventFilter, opts domain.ListOptions, page domain.PaginationParams) ([]*domain.Event, int, error) {
	events, total, err := s.eventRepo.ListUpcoming(ctx, s.now(), filter, opts, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) Create(ctx context.Context, hostID, title, description string, eventDate time.Time, totalGuest, readTime int, tagNames []string) (*domain.Event, error) {
	now := s.now()
	event := domain.NewEvent(title, description, slugify(title), hostID, eventDate, totalGuest, readTime, now, now)
	if err := s.eventRepo.Create(ctx, event, tagNames); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug, userID string) (*domain.EventDetail, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	tags, err := s.tagRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event tags: %w", err)
	}
	event.Tags = tags

	organizers, err := s.userRepo.ListOrganizersByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list event organizers: %w", err)
	}
	event.Organizers = organizers

	detail := &domain.EventDetail{
		Event:           event,
		EventIsOpen:     event.EventDate.After(s.now()),
		IsAuthenticated: userID != "",
	}
	if userID != "" {
		signedUp, err := s.attendeeRepo.Exists(ctx, event.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("check signup: %w", err)
		}
		detail.HasSignUp = signedUp
	}
	return detail, nil
}

func (s *eventService) Update(ctx context.Context, slug, userID string, upd domain.EventUpdate) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !domain.CanModifyEvent(userID, event) {
		return nil, domain.ErrForbidden
	}
	updated, err := s.eventRepo.Update(ctx, slug, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, slug, userID string) error {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if !domain.CanModifyEvent(userID, event) {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, slug); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
