package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventcollective/config"
	_ "eventcollective/docs"
	authadapter "eventcollective/internal/adapters/auth"
	emailadapter "eventcollective/internal/adapters/email"
	deliveryhttp "eventcollective/internal/delivery/http"
	"eventcollective/internal/delivery/http/controllers"
	"eventcollective/internal/delivery/http/middleware"
	"eventcollective/internal/repository/postgres"
	"eventcollective/internal/services"
)

// @title Event Collective API
// @version 1.0
// @description Event management API: events, talk proposals, signups, speakers and tags.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()

	if err := postgres.MigrateUp(cfg.DBUrl, postgres.DefaultMigrationsPath); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)

	// Adapters
	hasher := authadapter.NewBcryptHasher(12)
	issuer := authadapter.NewJWTIssuer(cfg.JWTSecret)
	verifier := authadapter.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}

	// Services
	emailSvc := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())
	eventSvc := services.NewEventService(eventRepo, tagRepo, userRepo, attendeeRepo)
	sessionSvc := services.NewSessionService(eventRepo, sessionRepo)
	attendeeSvc := services.NewAttendeeService(eventRepo, attendeeRepo, userRepo, emailSvc)
	tagSvc := services.NewTagService(tagRepo)
	authSvc := services.NewAuthService(userRepo, roleRepo, hasher, issuer, emailSvc, cfg.JWTExpiry)

	// Controllers
	eventCtrl := controllers.NewEventController(logger, eventSvc)
	sessionCtrl := controllers.NewSessionController(logger, sessionSvc)
	attendeeCtrl := controllers.NewAttendeeController(logger, attendeeSvc)
	tagCtrl := controllers.NewTagController(logger, tagSvc)
	authCtrl := controllers.NewAuthController(logger, authSvc)

	mux := deliveryhttp.NewRouter(verifier, eventCtrl, sessionCtrl, attendeeCtrl, tagCtrl, authCtrl)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
