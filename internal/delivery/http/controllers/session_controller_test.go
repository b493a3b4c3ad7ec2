package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventcollective/internal/delivery/http/helpers"
	"eventcollective/internal/delivery/http/middleware"
	"eventcollective/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionController_ListByStatus(t *testing.T) {
	tests := []struct {
		name       string
		handler    string
		wantStatus domain.SessionStatus
	}{
		{"drafts", "draft", domain.StatusDraft},
		{"accepted", "accepted", domain.StatusAccepted},
		{"denied", "denied", domain.StatusDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{listResult: []*domain.Session{{ID: "s-1"}}}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/pycon/sessions/"+tt.handler+"?search=go&ordering=-title", nil)
			req.SetPathValue("eventSlug", "pycon")
			rr := httptest.NewRecorder()

			switch tt.handler {
			case "draft":
				ctrl.ListDrafts(rr, req)
			case "accepted":
				ctrl.ListAccepted(rr, req)
			case "denied":
				ctrl.ListDenied(rr, req)
			}

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantStatus, fake.lastListStatus)
			assert.Equal(t, domain.ListOptions{Search: "go", OrderBy: "title", Desc: true}, fake.lastListOpts)
		})
	}
}

func TestSessionController_List_MissingEventIs404(t *testing.T) {
	fake := &fakeSessionService{listErr: domain.ErrNotFound}
	ctrl := NewSessionController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events/missing/sessions/draft", nil)
	req.SetPathValue("eventSlug", "missing")
	rr := httptest.NewRecorder()

	ctrl.ListDrafts(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionController_Get(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"wrong status bucket is 404", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{
				getResult: &domain.Session{ID: "s-1", Slug: "my-talk", Status: domain.StatusAccepted},
				getErr:    tt.fakeErr,
			}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/pycon/sessions/accepted/my-talk", nil)
			req.SetPathValue("eventSlug", "pycon")
			req.SetPathValue("slug", "my-talk")
			rr := httptest.NewRecorder()

			ctrl.GetAccepted(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, domain.StatusAccepted, fake.lastGetStatus)
		})
	}
}

func TestSessionController_CreateDraft(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		noUserContext  bool
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"title":"Intro to Go","description":"a talk","session_type":"talk"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			body:           `{"title":"Intro to Go","session_type":"talk"}`,
			noUserContext:  true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "unauthorized",
		},
		{
			name:           "missing title",
			body:           `{"session_type":"talk"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "title is required",
		},
		{
			name:           "missing session type",
			body:           `{"title":"Intro to Go"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "session_type is required",
		},
		{
			name:           "status not accepted in body",
			body:           `{"title":"Intro to Go","session_type":"talk","status":"Accepted"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:       "missing parent event",
			body:       `{"title":"Intro to Go","session_type":"talk"}`,
			fakeErr:    domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{createErr: tt.fakeErr}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/events/pycon/sessions/draft", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventSlug", "pycon")
			if !tt.noUserContext {
				req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			}
			rr := httptest.NewRecorder()

			ctrl.CreateDraft(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "user-123", fake.lastProposer)
			} else if tt.wantBodySubstr != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestSessionController_UpdateDraft(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"forbidden for non-proposer", domain.ErrForbidden, http.StatusForbidden, helpers.ErrCodeForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{
				updateResult: &domain.Session{ID: "s-1", Title: "Renamed"},
				updateErr:    tt.fakeErr,
			}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPatch, "/events/pycon/sessions/draft/my-talk", bytes.NewBufferString(`{"title":"Renamed"}`))
			req.SetPathValue("eventSlug", "pycon")
			req.SetPathValue("slug", "my-talk")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.UpdateDraft(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				var envelope helpers.APIResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
			}
		})
	}
}

func TestSessionController_DeleteDraft(t *testing.T) {
	tests := []struct {
		name       string
		fakeErr    error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSessionService{deleteErr: tt.fakeErr}
			ctrl := NewSessionController(testLogger, fake)
			req := httptest.NewRequest(http.MethodDelete, "/events/pycon/sessions/draft/my-talk", nil)
			req.SetPathValue("eventSlug", "pycon")
			req.SetPathValue("slug", "my-talk")
			req = req.WithContext(middleware.SetUserID(req.Context(), "user-123"))
			rr := httptest.NewRecorder()

			ctrl.DeleteDraft(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestSessionController_ListSpeakers(t *testing.T) {
	fake := &fakeSessionService{speakersResult: []*domain.Speaker{
		{SessionID: "s-1", SessionTitle: "Intro", Name: "Ada", LastName: "Lovelace"},
	}}
	ctrl := NewSessionController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/events/pycon/speakers", nil)
	req.SetPathValue("eventSlug", "pycon")
	rr := httptest.NewRecorder()

	ctrl.ListSpeakers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
}
