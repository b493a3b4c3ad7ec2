package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"eventcollective/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for controller tests.
type fakeEventService struct {
	listResult   []*domain.Event
	listTotal    int
	listErr      error
	lastFilter   domain.EventFilter
	lastOpts     domain.ListOptions
	lastPage     domain.PaginationParams
	createResult *domain.Event
	createErr    error
	lastHostID   string
	getResult    *domain.EventDetail
	getErr       error
	lastGetSlug  string
	lastGetUser  string
	updateResult *domain.Event
	updateErr    error
	lastUpdate   domain.EventUpdate
	deleteErr    error
	lastDelete   string
}

func (f *fakeEventService) ListUpcoming(ctx context.Context, filter domain.EventFilter, opts domain.ListOptions, page domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastFilter = filter
	f.lastOpts = opts
	f.lastPage = page
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeEventService) Create(ctx context.Context, hostID, title, description string, eventDate time.Time, totalGuest, readTime int, tagNames []string) (*domain.Event, error) {
	f.lastHostID = hostID
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &domain.Event{ID: "ev-created", Title: title, HostedBy: hostID, EventDate: eventDate}, nil
}

func (f *fakeEventService) GetBySlug(ctx context.Context, slug, userID string) (*domain.EventDetail, error) {
	f.lastGetSlug = slug
	f.lastGetUser = userID
	return f.getResult, f.getErr
}

func (f *fakeEventService) Update(ctx context.Context, slug, userID string, upd domain.EventUpdate) (*domain.Event, error) {
	f.lastUpdate = upd
	return f.updateResult, f.updateErr
}

func (f *fakeEventService) Delete(ctx context.Context, slug, userID string) error {
	f.lastDelete = slug
	return f.deleteErr
}

// fakeSessionService implements domain.SessionService for controller tests.
type fakeSessionService struct {
	listResult     []*domain.Session
	listErr        error
	lastListStatus domain.SessionStatus
	lastListOpts   domain.ListOptions
	getResult      *domain.Session
	getErr         error
	lastGetStatus  domain.SessionStatus
	createResult   *domain.Session
	createErr      error
	lastProposer   string
	updateResult   *domain.Session
	updateErr      error
	deleteErr      error
	speakersResult []*domain.Speaker
	speakersErr    error
}

func (f *fakeSessionService) List(ctx context.Context, eventSlug string, status domain.SessionStatus, opts domain.ListOptions) ([]*domain.Session, error) {
	f.lastListStatus = status
	f.lastListOpts = opts
	return f.listResult, f.listErr
}

func (f *fakeSessionService) Get(ctx context.Context, eventSlug, slug string, status domain.SessionStatus) (*domain.Session, error) {
	f.lastGetStatus = status
	return f.getResult, f.getErr
}

func (f *fakeSessionService) CreateDraft(ctx context.Context, eventSlug, proposerID, title, description, sessionType string) (*domain.Session, error) {
	f.lastProposer = proposerID
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return &domain.Session{ID: "sess-created", Title: title, Status: domain.StatusDraft, ProposedBy: proposerID}, nil
}

func (f *fakeSessionService) UpdateDraft(ctx context.Context, eventSlug, slug, userID string, upd domain.SessionUpdate) (*domain.Session, error) {
	return f.updateResult, f.updateErr
}

func (f *fakeSessionService) DeleteDraft(ctx context.Context, eventSlug, slug, userID string) error {
	return f.deleteErr
}

func (f *fakeSessionService) ListSpeakers(ctx context.Context, eventSlug string) ([]*domain.Speaker, error) {
	return f.speakersResult, f.speakersErr
}

// fakeAttendeeService implements domain.AttendeeService for controller tests.
type fakeAttendeeService struct {
	signUpResult *domain.Attendee
	signUpErr    error
	lastSlug     string
	lastUserID   string
	listResult   []*domain.AttendeeWithUser
	listErr      error
}

func (f *fakeAttendeeService) SignUp(ctx context.Context, eventSlug, userID string) (*domain.Attendee, error) {
	f.lastSlug = eventSlug
	f.lastUserID = userID
	return f.signUpResult, f.signUpErr
}

func (f *fakeAttendeeService) ListByEventSlug(ctx context.Context, eventSlug string) ([]*domain.AttendeeWithUser, error) {
	f.lastSlug = eventSlug
	return f.listResult, f.listErr
}

// fakeTagService implements domain.TagService for controller tests.
type fakeTagService struct {
	tags []*domain.Tag
	err  error
}

func (f *fakeTagService) ListAll(ctx context.Context) ([]*domain.Tag, error) {
	return f.tags, f.err
}

// fakeAuthService implements domain.AuthService for controller tests.
type fakeAuthService struct {
	signUpResult *domain.User
	signUpErr    error
	lastRole     string
	loginToken   string
	loginErr     error
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name, lastName, role string) (*domain.User, error) {
	f.lastRole = role
	return f.signUpResult, f.signUpErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginToken, f.loginErr
}
