package controllers

import (
	"log/slog"
	"net/http"

	"eventcollective/internal/delivery/http/helpers"
	"eventcollective/internal/delivery/http/middleware"
	"eventcollective/internal/domain"
)

// SignupSuccessResponse is the success response envelope for POST /events/{slug}/signup (201).
type SignupSuccessResponse struct {
	Data  *domain.Attendee  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AttendeeListSuccessResponse is the success response envelope for GET /events/{eventSlug}/attendees.
type AttendeeListSuccessResponse struct {
	Data  []*domain.AttendeeWithUser `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Sign up to an event
// @Description Registers the authenticated user as an attendee of the event. The event host cannot sign up to their own event, and signing up twice fails.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 201 {object} controllers.SignupSuccessResponse "data contains the signup"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (host signup or duplicate)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug}/signup [post]
func (c *AttendeeController) SignUp(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	attendee, err := c.Service.SignUp(r.Context(), slug, userID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, attendee)
}

// List godoc
// @Summary List event attendees
// @Description Returns the users signed up to the event.
// @Tags attendees
// @Produce json
// @Param eventSlug path string true "Event slug"
// @Success 200 {object} controllers.AttendeeListSuccessResponse "data contains attendees"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventSlug}/attendees [get]
func (c *AttendeeController) List(w http.ResponseWriter, r *http.Request) {
	eventSlug := r.PathValue("eventSlug")
	if eventSlug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing event slug")
		return
	}
	attendees, err := c.Service.ListByEventSlug(r.Context(), eventSlug)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendees)
}
