package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yvrfountains/internal/auth"
	"yvrfountains/internal/domain/admins"
	"yvrfountains/internal/domain/storage"
	"yvrfountains/internal/gate"
	"yvrfountains/internal/ratelimiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errNotImplemented = fmt.Errorf("not implemented in test fake")

// fakeAdminRegistry satisfies admins.Store with just enough behavior for
// the token middleware: GetByID over a fixed map.
type fakeAdminRegistry struct {
	admins map[int64]*admins.Admin
}

func (f *fakeAdminRegistry) Create(ctx context.Context, admin *admins.Admin) error {
	return errNotImplemented
}

func (f *fakeAdminRegistry) GetByID(ctx context.Context, adminID int64) (*admins.Admin, error) {
	admin, ok := f.admins[adminID]
	if !ok {
		return nil, admins.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRegistry) GetByEmail(ctx context.Context, email string) (*admins.Admin, error) {
	return nil, errNotImplemented
}

func (f *fakeAdminRegistry) List(ctx context.Context) ([]admins.Admin, error) {
	return nil, errNotImplemented
}

func (f *fakeAdminRegistry) Deactivate(ctx context.Context, adminID int64) error {
	return errNotImplemented
}

func (f *fakeAdminRegistry) Delete(ctx context.Context, adminID int64) error {
	return errNotImplemented
}

func (f *fakeAdminRegistry) SaveRefreshToken(ctx context.Context, adminID int64, refreshToken string) error {
	return errNotImplemented
}

func (f *fakeAdminRegistry) DeleteRefreshToken(ctx context.Context, adminID int64) error {
	return errNotImplemented
}

func (f *fakeAdminRegistry) GetRefreshToken(ctx context.Context, adminID int64) (string, error) {
	return "", errNotImplemented
}

func (f *fakeAdminRegistry) Verify(ctx context.Context, email, password string) (gate.Identity, error) {
	return gate.Identity{}, errNotImplemented
}

func (f *fakeAdminRegistry) IsAdmin(ctx context.Context, identityID int64) (bool, error) {
	admin, ok := f.admins[identityID]
	return ok && admin.IsActive, nil
}

func setupMiddlewareTest(t *testing.T) *application {
	t.Helper()

	registry := &fakeAdminRegistry{admins: map[int64]*admins.Admin{
		1: {ID: 1, Email: "mod@example.com", Name: "Mod", IsActive: true},
		2: {ID: 2, Email: "gone@example.com", Name: "Gone", IsActive: false},
	}}

	return &application{
		config: config{
			auth: authConfig{
				basic: basicConfig{user: "ops", pass: "opspass"},
			},
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 2,
				TimeFrame:            time.Minute,
				Enabled:              true,
			},
		},
		store:         &storage.Container{Admins: registry},
		gate:          gate.New(registry, registry),
		logger:        zap.NewNop().Sugar(),
		authenticator: auth.NewJWTAuthenticator("secret", "refresh-secret", "yvrfountains", "yvrfountains", time.Hour, 24*time.Hour),
		rateLimiter:   ratelimiter.NewFixedWindow(2, time.Minute),
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func TestBasicAuthMiddleware(t *testing.T) {
	app := setupMiddlewareTest(t)
	handler := app.BasicAuthMiddleware()(okHandler())

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"malformed header", "Basic", http.StatusUnauthorized},
		{"wrong scheme", "Bearer abc", http.StatusUnauthorized},
		{"not base64", "Basic %%%", http.StatusUnauthorized},
		{"wrong credentials", basicAuth("ops", "nope"), http.StatusUnauthorized},
		{"valid credentials", basicAuth("ops", "opspass"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/health", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="restricted", charset="UTF-8"`, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAdminTokenMiddleware(t *testing.T) {
	app := setupMiddlewareTest(t)

	var seen *gate.AdminContext
	handler := app.AdminTokenMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = getAdminFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))

	tokenFor := func(adminID int64) string {
		access, _, err := app.authenticator.GenerateTokens(adminID, "admin")
		require.NoError(t, err)
		return access
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", basicAuth("ops", "opspass"), http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"token for unknown admin", "Bearer " + tokenFor(99), http.StatusUnauthorized},
		{"token for deactivated admin", "Bearer " + tokenFor(2), http.StatusForbidden},
		{"token for active admin", "Bearer " + tokenFor(1), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest("GET", "/v1/admin/reviews/pending", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.True(t, seen.Valid())
				assert.Equal(t, int64(1), seen.AdminID())
				assert.Equal(t, "mod@example.com", seen.Email())
			}
		})
	}
}

// A token that was valid when issued dies as soon as the registry row is
// deactivated; there is no waiting out the expiry.
func TestAdminTokenMiddleware_DeactivationTakesEffectImmediately(t *testing.T) {
	app := setupMiddlewareTest(t)
	handler := app.AdminTokenMiddleware(okHandler())

	access, _, err := app.authenticator.GenerateTokens(1, "admin")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/v1/admin/reviews/pending", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	registry := app.store.Admins.(*fakeAdminRegistry)
	registry.admins[1].IsActive = false

	req = httptest.NewRequest("GET", "/v1/admin/reviews/pending", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestActorForRequest(t *testing.T) {
	app := setupMiddlewareTest(t)

	req := httptest.NewRequest("GET", "/v1/fountains", nil)
	actor := actorForRequest(req)
	assert.False(t, actor.IsAdmin)

	adminContext := app.gate.ContextFromIdentity(gate.Identity{ID: 7, Email: "mod@example.com"})
	req = req.WithContext(context.WithValue(req.Context(), adminCtx, adminContext))

	actor = actorForRequest(req)
	assert.True(t, actor.IsAdmin)
	assert.Equal(t, int64(7), actor.ID)
}

func TestRateLimiterMiddleware(t *testing.T) {
	app := setupMiddlewareTest(t)
	handler := app.RateLimiterMiddleware(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/v1/fountains/1/reviews", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest("POST", "/v1/fountains/1/reviews", nil)
	req.RemoteAddr = "10.0.0.1:52000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiterMiddleware_Disabled(t *testing.T) {
	app := setupMiddlewareTest(t)
	app.config.rateLimiter.Enabled = false
	handler := app.RateLimiterMiddleware(okHandler())

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest("POST", "/v1/fountains/1/reviews", nil)
		req.RemoteAddr = "10.0.0.1:52000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
