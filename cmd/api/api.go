package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yvrfountains/docs" //this is required to generate swagger docs
	"yvrfountains/internal/auth"
	"yvrfountains/internal/domain/reviews"
	"yvrfountains/internal/domain/storage"
	"yvrfountains/internal/gate"
	"yvrfountains/internal/mailer"
	"yvrfountains/internal/ratelimiter"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	engine        *reviews.Engine
	gate          *gate.Gate
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   *ratelimiter.FixedWindow
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	frontendURL string
	mail        mailConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
	receiptSalt string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret          string
	refreshSecret   string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	fromEmail string
	// moderationEmail receives the new-submission notifications.
	moderationEmail string
	smtp            smtpConfig
}

type smtpConfig struct {
	host     string
	port     int
	username string
	password string
}

type dbConfig struct {
	addr        string
	maxConns    int32
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	allowedOrigins := []string{"https://*", "http://*"}
	if app.config.frontendURL != "" {
		allowedOrigins = []string{app.config.frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public map feed and submissions.
		r.Route("/fountains", func(r chi.Router) {
			r.Get("/", app.listFountainsHandler)
			r.Get("/geojson", app.fountainsGeoJSONHandler)

			r.Route("/{fountainID}", func(r chi.Router) {
				r.Get("/", app.getFountainHandler)
				r.Get("/reviews", app.listApprovedReviewsHandler)
				r.With(app.RateLimiterMiddleware).Post("/reviews", app.submitPublicReviewHandler)
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
			r.With(app.AdminTokenMiddleware).Post("/logout", app.logoutHandler)
		})

		// Moderation and curation; every route re-checks registry
		// membership through the token middleware.
		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AdminTokenMiddleware)

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/pending", app.listPendingReviewsHandler)
				r.Get("/stats", app.reviewStatsHandler)
				r.Patch("/{reviewID}", app.moderateReviewHandler)
			})

			r.Route("/fountains", func(r chi.Router) {
				r.Post("/", app.createFountainHandler)

				r.Route("/{fountainID}", func(r chi.Router) {
					r.Patch("/", app.updateFountainHandler)
					r.Delete("/", app.deactivateFountainHandler)
					r.Post("/reviews", app.submitAdminReviewHandler)
					r.Post("/photo", app.uploadFountainPhotoHandler)
				})
			})

			r.Route("/registry", func(r chi.Router) {
				r.Get("/", app.listAdminsHandler)
				r.Post("/", app.addAdminHandler)
				r.Delete("/{adminID}", app.deactivateAdminHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
