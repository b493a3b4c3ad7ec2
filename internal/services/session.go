package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventcollective/internal/domain"
)

type sessionService struct {
	eventRepo   domain.EventRepository
	sessionRepo domain.SessionRepository
	now         func() time.Time
}

// NewSessionService creates a SessionService with the given repositories.
func NewSessionService(eventRepo domain.EventRepository, sessionRepo domain.SessionRepository) domain.SessionService {
	return &sessionService{
		eventRepo:   eventRepo,
		sessionRepo: sessionRepo,
		now:         time.Now,
	}
}

// resolveEvent loads the parent event by slug. A missing parent is ErrNotFound
// for every session operation.
func (s *sessionService) resolveEvent(ctx context.Context, eventSlug string) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get parent event: %w", err)
	}
	return event, nil
}

func (s *sessionService) List(ctx context.Context, eventSlug string, status domain.SessionStatus, opts domain.ListOptions) ([]*domain.Session, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessionRepo.ListByEvent(ctx, event.ID, status, opts)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Get(ctx context.Context, eventSlug, slug string, status domain.SessionStatus) (*domain.Session, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.GetByEventSlug(ctx, event.ID, slug, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (s *sessionService) CreateDraft(ctx context.Context, eventSlug, proposerID, title, description, sessionType string) (*domain.Session, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	now := s.now()
	session := domain.NewSession(event.ID, title, description, slugify(title), sessionType, proposerID, now, now)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *sessionService) UpdateDraft(ctx context.Context, eventSlug, slug, userID string, upd domain.SessionUpdate) (*domain.Session, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.GetByEventSlug(ctx, event.ID, slug, domain.StatusDraft)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !domain.CanModifySession(userID, session) {
		return nil, domain.ErrForbidden
	}
	updated, err := s.sessionRepo.Update(ctx, session.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (s *sessionService) DeleteDraft(ctx context.Context, eventSlug, slug, userID string) error {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return err
	}
	session, err := s.sessionRepo.GetByEventSlug(ctx, event.ID, slug, domain.StatusDraft)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get session: %w", err)
	}
	if !domain.CanModifySession(userID, session) {
		return domain.ErrForbidden
	}
	if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *sessionService) ListSpeakers(ctx context.Context, eventSlug string) ([]*domain.Speaker, error) {
	event, err := s.resolveEvent(ctx, eventSlug)
	if err != nil {
		return nil, err
	}
	speakers, err := s.sessionRepo.ListSpeakersByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list speakers: %w", err)
	}
	return speakers, nil
}
