package services

import (
	"context"
	"time"

	"eventcollective/internal/domain"
)

type mockEventRepository struct {
	eventsBySlug map[string]*domain.Event
	listed       []*domain.Event
	created      []*domain.Event
	deletedSlugs []string
	err          error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event, tagNames []string) error {
	if m.err != nil {
		return m.err
	}
	event.ID = "ev-created"
	m.created = append(m.created, event)
	return nil
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.eventsBySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListUpcoming(ctx context.Context, now time.Time, filter domain.EventFilter, opts domain.ListOptions, page domain.PaginationParams) ([]*domain.Event, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.listed, len(m.listed), nil
}

func (m *mockEventRepository) Update(ctx context.Context, slug string, upd domain.EventUpdate) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.eventsBySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		ev.Title = *upd.Title
	}
	return ev, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, slug string) error {
	if _, ok := m.eventsBySlug[slug]; !ok {
		return domain.ErrNotFound
	}
	m.deletedSlugs = append(m.deletedSlugs, slug)
	return nil
}

type mockAttendeeRepository struct {
	existing map[string]bool // key: eventID + ":" + userID
	byEvent  map[string][]*domain.AttendeeWithUser
	created  []*domain.Attendee
	err      error
}

func (m *mockAttendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	if m.err != nil {
		return m.err
	}
	key := a.EventID + ":" + a.UserID
	if m.existing[key] {
		return domain.ErrAlreadySignedUp
	}
	if m.existing == nil {
		m.existing = make(map[string]bool)
	}
	m.existing[key] = true
	a.ID = "att-created"
	m.created = append(m.created, a)
	return nil
}

func (m *mockAttendeeRepository) Exists(ctx context.Context, eventID, userID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.existing[eventID+":"+userID], nil
}

func (m *mockAttendeeRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.AttendeeWithUser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEvent[eventID], nil
}

type mockTagRepository struct {
	all     []*domain.Tag
	byEvent map[string][]*domain.Tag
	err     error
}

func (m *mockTagRepository) ListAll(ctx context.Context) ([]*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.all, nil
}

func (m *mockTagRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byEvent[eventID], nil
}

type mockUserRepository struct {
	usersByID    map[string]*domain.User
	usersByEmail map[string]*domain.User
	organizers   map[string][]*domain.User
	assignedRole string
	err          error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.usersByEmail[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	user.ID = "user-created"
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := m.usersByEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.usersByID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) AssignRole(ctx context.Context, userID, roleID string) error {
	m.assignedRole = roleID
	return nil
}

func (m *mockUserRepository) ListOrganizersByEventID(ctx context.Context, eventID string) ([]*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.organizers[eventID], nil
}

type mockSessionRepository struct {
	byEventSlug map[string]*domain.Session // key: eventID + ":" + slug + ":" + status
	listed      []*domain.Session
	speakers    []*domain.Speaker
	created     []*domain.Session
	deletedIDs  []string
	err         error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	session.ID = "sess-created"
	m.created = append(m.created, session)
	return nil
}

func (m *mockSessionRepository) GetByEventSlug(ctx context.Context, eventID, slug string, status domain.SessionStatus) (*domain.Session, error) {
	s, ok := m.byEventSlug[eventID+":"+slug+":"+string(status)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockSessionRepository) ListByEvent(ctx context.Context, eventID string, status domain.SessionStatus, opts domain.ListOptions) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Session
	for _, s := range m.listed {
		if s.EventID == eventID && s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepository) Update(ctx context.Context, id string, upd domain.SessionUpdate) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.byEventSlug {
		if s.ID == id {
			if upd.Title != nil {
				s.Title = *upd.Title
			}
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return nil
}

func (m *mockSessionRepository) ListSpeakersByEvent(ctx context.Context, eventID string) ([]*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.speakers, nil
}
