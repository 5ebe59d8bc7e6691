package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/config"
	"github.com/nyayasetu/backend/internal/database"
	"github.com/nyayasetu/backend/internal/handler"
	"github.com/nyayasetu/backend/internal/jobs"
	"github.com/nyayasetu/backend/internal/mail"
	"github.com/nyayasetu/backend/internal/middleware"
	"github.com/nyayasetu/backend/internal/redis"
	"github.com/nyayasetu/backend/internal/repository"
	"github.com/nyayasetu/backend/internal/service"
	"github.com/nyayasetu/backend/internal/token"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	setLogLevel(cfg.LogLevel)

	isProduction := os.Getenv("GO_ENV") == "production"
	if err := cfg.Validate(isProduction); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), config.DBPingTimeout)
	if err := db.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}
	cancel()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("database connected")

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	lawyerRepo := repository.NewLawyerRepository(db.DB)
	clientRepo := repository.NewClientRepository(db.DB)
	caseRepo := repository.NewCaseRepository(db.DB)
	hearingRepo := repository.NewHearingRepository(db.DB)
	otpRepo := repository.NewOTPRepository(db.DB)

	tokens := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL())
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From())

	ragService := service.NewRAGService(caseRepo, cfg.RAGServiceURL)
	authService := service.NewAuthService(db, lawyerRepo, otpRepo, mailer, tokens, cfg.OTPTTL())
	lawyerService := service.NewLawyerService(lawyerRepo)
	clientService := service.NewClientService(clientRepo)
	caseService := service.NewCaseService(caseRepo, clientRepo)
	hearingService := service.NewHearingService(hearingRepo, caseRepo, clientRepo, lawyerRepo, mailer, ragService)

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	loginRateLimiter := middleware.NewLoginRateLimiter()
	redisRateLimiter := middleware.NewRedisRateLimiter(redisClient.Client)
	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(0)

	authHandler := handler.NewAuthHandler(
		authService,
		loginRateLimiter.Handler,
		redisRateLimiter.LimitByIP("otp", config.OTPRequestLimit),
	)
	lawyerHandler := handler.NewLawyerHandler(lawyerService, authMiddleware.Handler)
	clientHandler := handler.NewClientHandler(clientService, authMiddleware.Handler)
	caseHandler := handler.NewCaseHandler(caseService, authMiddleware.Handler)
	hearingHandler := handler.NewHearingHandler(hearingService, authMiddleware.Handler)
	ragHandler := handler.NewRAGHandler(
		ragService,
		authMiddleware.Handler,
		redisRateLimiter.LimitByLawyer("rag", config.RAGQueryLimit),
	)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UnixMilli(),
		})
	})

	r.Route("/nyayasetu/api", func(r chi.Router) {
		// Hearings carry multipart PDF uploads and set their own body cap.
		r.Mount("/hearings", hearingHandler.Routes())

		r.Group(func(r chi.Router) {
			r.Use(bodyLimitMiddleware.Handler)

			r.Mount("/admins", authHandler.Routes())
			r.Mount("/lawyers", lawyerHandler.Routes())
			r.Mount("/clients", clientHandler.Routes())
			r.Mount("/cases", caseHandler.Routes())
			r.Mount("/rag", ragHandler.Routes())
		})
	})

	cleanupJob := jobs.NewCleanupJob(otpRepo, config.CleanupJobInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: 0,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
