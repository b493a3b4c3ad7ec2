package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eventcollective/internal/domain"
)

type attendeeService struct {
	eventRepo    domain.EventRepository
	attendeeRepo domain.AttendeeRepository
	userRepo     domain.UserRepository
	email        domain.EmailService
	now          func() time.Time
}

// NewAttendeeService creates an AttendeeService with the given repositories.
// email may be nil, in which case no confirmation emails are sent.
func NewAttendeeService(
	eventRepo domain.EventRepository,
	attendeeRepo domain.AttendeeRepository,
	userRepo domain.UserRepository,
	email domain.EmailService,
) domain.AttendeeService {
	return &attendeeService{
		eventRepo:    eventRepo,
		attendeeRepo: attendeeRepo,
		userRepo:     userRepo,
		email:        email,
		now:          time.Now,
	}
}

func (s *attendeeService) SignUp(ctx context.Context, eventSlug, userID string) (*domain.Attendee, error) {
	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.HostedBy == userID {
		return nil, domain.ErrHostSignup
	}

	signedUp, err := s.attendeeRepo.Exists(ctx, event.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check signup: %w", err)
	}
	if signedUp {
		return nil, domain.ErrAlreadySignedUp
	}

	attendee := domain.NewAttendee(event.ID, userID, s.now())
	// The unique constraint on (event_id, user_id) closes the window between
	// the Exists check and this insert.
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			return nil, domain.ErrAlreadySignedUp
		}
		return nil, fmt.Errorf("create signup: %w", err)
	}

	s.sendConfirmation(ctx, event, userID)
	return attendee, nil
}

// sendConfirmation emails the attendee. Failures are logged, never surfaced:
// the signup has already been committed.
func (s *attendeeService) sendConfirmation(ctx context.Context, event *domain.Event, userID string) {
	if s.email == nil {
		return
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[ATTENDEE] could not load user %s for confirmation email: %v", userID, err)
		return
	}
	data := &domain.SignupConfirmationEmailData{
		Email:      user.Email,
		Name:       user.Name,
		EventTitle: event.Title,
		EventDate:  event.EventDate.Format("January 2, 2006 15:04 MST"),
	}
	if err := s.email.SendSignupConfirmation(ctx, data); err != nil {
		log.Printf("[ATTENDEE] confirmation email to %s failed: %v", user.Email, err)
	}
}

func (s *attendeeService) ListByEventSlug(ctx context.Context, eventSlug string) ([]*domain.AttendeeWithUser, error) {
	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	attendees, err := s.attendeeRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return attendees, nil
}
