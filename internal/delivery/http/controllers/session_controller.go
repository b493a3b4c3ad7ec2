package controllers

import (
	"log/slog"
	"net/http"

	"eventcollective/internal/delivery/http/helpers"
	"eventcollective/internal/delivery/http/middleware"
	"eventcollective/internal/domain"
)

// CreateSessionRequest is the request body for POST /events/{eventSlug}/sessions/draft.
type CreateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SessionType string `json:"session_type"`
}

// Validate implements Validator.
func (c CreateSessionRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.SessionType == "" {
		errs = append(errs, "session_type is required")
	}
	return errs
}

// UpdateSessionRequest is the request body for PUT and PATCH on a draft
// session. Absent fields are left unchanged. Status is not accepted here.
type UpdateSessionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SessionType *string `json:"session_type"`
}

// Validate implements Validator.
func (u UpdateSessionRequest) Validate() []string {
	var errs []string
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if u.SessionType != nil && *u.SessionType == "" {
		errs = append(errs, "session_type must not be empty")
	}
	return errs
}

// SessionListSuccessResponse is the success response envelope for session list endpoints.
type SessionListSuccessResponse struct {
	Data  []*domain.Session `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SessionSuccessResponse is the success response envelope for single-session endpoints.
type SessionSuccessResponse struct {
	Data  *domain.Session   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SpeakerListSuccessResponse is the success response envelope for GET /events/{eventSlug}/speakers.
type SpeakerListSuccessResponse struct {
	Data  []*domain.Speaker `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type SessionController struct {
	Logger  *slog.Logger
	Service domain.SessionService
}

func NewSessionController(logger *slog.Logger, svc domain.SessionService) *SessionController {
	return &SessionController{
		Logger:  logger,
		Service: svc,
	}
}

// list serves the three status-scoped list endpoints.
func (c *SessionController) list(w http.ResponseWriter, r *http.Request, status domain.SessionStatus) {
	eventSlug := r.PathValue("eventSlug")
	if eventSlug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event slug")
		return
	}
	opts := helpers.ParseListOptions(r, domain.SessionListConfig)
	sessions, err := c.Service.List(r.Context(), eventSlug, status, opts)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessions)
}

// get serves the three status-scoped retrieve endpoints.
func (c *SessionController) get(w http.ResponseWriter, r *http.Request, status domain.SessionStatus) {
	eventSlug := r.PathValue("eventSlug")
	slug := r.PathValue("slug")
	if eventSlug == "" || slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	session, err := c.Service.Get(r.Context(), eventSlug, slug, status)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// ListDrafts godoc
// @Summary List draft sessions
// @Description Returns the event's draft sessions. Supports search over title and description and ordering by title or session_type.
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param search query string false "Search term for title and description"
// @Param ordering query string false "Order field: title or session_type, optionally prefixed with -"
// @Success 200 {object} controllers.SessionListSuccessResponse "data contains sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/draft [get]
func (c *SessionController) ListDrafts(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.StatusDraft)
}

// ListAccepted godoc
// @Summary List accepted sessions
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param search query string false "Search term for title and description"
// @Param ordering query string false "Order field: title or session_type, optionally prefixed with -"
// @Success 200 {object} controllers.SessionListSuccessResponse "data contains sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/accepted [get]
func (c *SessionController) ListAccepted(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.StatusAccepted)
}

// ListDenied godoc
// @Summary List denied sessions
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param search query string false "Search term for title and description"
// @Param ordering query string false "Order field: title or session_type, optionally prefixed with -"
// @Success 200 {object} controllers.SessionListSuccessResponse "data contains sessions"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/denied [get]
func (c *SessionController) ListDenied(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, domain.StatusDenied)
}

// GetDraft godoc
// @Summary Get a draft session by slug
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param slug path string true "Session slug"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/draft/{slug} [get]
func (c *SessionController) GetDraft(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, domain.StatusDraft)
}

// GetAccepted godoc
// @Summary Get an accepted session by slug
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param slug path string true "Session slug"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/accepted/{slug} [get]
func (c *SessionController) GetAccepted(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, domain.StatusAccepted)
}

// GetDenied godoc
// @Summary Get a denied session by slug
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Param slug path string true "Session slug"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the session"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/denied/{slug} [get]
func (c *SessionController) GetDenied(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, domain.StatusDenied)
}

// CreateDraft godoc
// @Summary Propose a session
// @Description Creates a draft session on the event, proposed by the authenticated user. The slug is derived from the title.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventSlug path string true "Event slug"
// @Param session body CreateSessionRequest true "Session data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the created session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/draft [post]
func (c *SessionController) CreateDraft(w http.ResponseWriter, r *http.Request) {
	eventSlug := r.PathValue("eventSlug")
	if eventSlug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event slug")
		return
	}
	var req CreateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, err := c.Service.CreateDraft(r.Context(), eventSlug, userID, req.Title, req.Description, req.SessionType)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, session)
}

// UpdateDraft godoc
// @Summary Update a draft session
// @Description Partially updates the draft session. Only the proposer may update it. Status cannot be changed here.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventSlug path string true "Event slug"
// @Param slug path string true "Session slug"
// @Param session body UpdateSessionRequest true "Fields to update"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the updated session"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/draft/{slug} [patch]
func (c *SessionController) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	eventSlug := r.PathValue("eventSlug")
	slug := r.PathValue("slug")
	if eventSlug == "" || slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	var req UpdateSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	session, err := c.Service.UpdateDraft(r.Context(), eventSlug, slug, userID, domain.SessionUpdate{
		Title:       req.Title,
		Description: req.Description,
		SessionType: req.SessionType,
	})
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, session)
}

// DeleteDraft godoc
// @Summary Delete a draft session
// @Description Deletes the draft session. Only the proposer may delete it.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param eventSlug path string true "Event slug"
// @Param slug path string true "Session slug"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/sessions/draft/{slug} [delete]
func (c *SessionController) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	eventSlug := r.PathValue("eventSlug")
	slug := r.PathValue("slug")
	if eventSlug == "" || slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteDraft(r.Context(), eventSlug, slug, userID); err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSpeakers godoc
// @Summary List event speakers
// @Description Returns the proposers of the event's accepted sessions with their talk details.
// @Tags sessions
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Success 200 {object} controllers.SpeakerListSuccessResponse "data contains speakers"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/speakers [get]
func (c *SessionController) ListSpeakers(w http.ResponseWriter, r *http.Request) {
	eventSlug := r.PathValue("eventSlug")
	if eventSlug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event slug")
		return
	}
	speakers, err := c.Service.ListSpeakers(r.Context(), eventSlug)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, speakers)
}
