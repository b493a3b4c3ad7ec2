package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventcollective/internal/delivery/http/controllers"
	"eventcollective/internal/delivery/http/middleware"
	"eventcollective/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	verifier domain.TokenVerifier,
	eventController *controllers.EventController,
	sessionController *controllers.SessionController,
	attendeeController *controllers.AttendeeController,
	tagController *controllers.TagController,
	authController *controllers.AuthController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)
	optionalAuth := middleware.OptionalAuth(verifier)

	// Tags
	mux.HandleFunc("GET /tags", tagController.List)

	// Events
	mux.HandleFunc("GET /events", eventController.List)
	mux.HandleFunc("POST /events", requireAuth(eventController.Create))
	mux.HandleFunc("GET /events/{slug}", optionalAuth(eventController.Get))
	mux.HandleFunc("PUT /events/{slug}", requireAuth(eventController.Update))
	mux.HandleFunc("PATCH /events/{slug}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /events/{slug}", requireAuth(eventController.Delete))

	// Signups and attendees
	mux.HandleFunc("POST /events/{slug}/signup", requireAuth(attendeeController.SignUp))
	mux.HandleFunc("GET /events/{eventSlug}/attendees", attendeeController.List)

	// Sessions by status
	mux.HandleFunc("GET /events/{eventSlug}/sessions/draft", sessionController.ListDrafts)
	mux.HandleFunc("POST /events/{eventSlug}/sessions/draft", requireAuth(sessionController.CreateDraft))
	mux.HandleFunc("GET /events/{eventSlug}/sessions/draft/{slug}", sessionController.GetDraft)
	mux.HandleFunc("PUT /events/{eventSlug}/sessions/draft/{slug}", requireAuth(sessionController.UpdateDraft))
	mux.HandleFunc("PATCH /events/{eventSlug}/sessions/draft/{slug}", requireAuth(sessionController.UpdateDraft))
	mux.HandleFunc("DELETE /events/{eventSlug}/sessions/draft/{slug}", requireAuth(sessionController.DeleteDraft))
	mux.HandleFunc("GET /events/{eventSlug}/sessions/accepted", sessionController.ListAccepted)
	mux.HandleFunc("GET /events/{eventSlug}/sessions/accepted/{slug}", sessionController.GetAccepted)
	mux.HandleFunc("GET /events/{eventSlug}/sessions/denied", sessionController.ListDenied)
	mux.HandleFunc("GET /events/{eventSlug}/sessions/denied/{slug}", sessionController.GetDenied)

	// Speakers
	mux.HandleFunc("GET /events/{eventSlug}/speakers", sessionController.ListSpeakers)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
