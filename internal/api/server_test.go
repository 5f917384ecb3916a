package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/service"
	"github.com/martijn/habilitations/internal/infrastructure/access"
	"github.com/martijn/habilitations/internal/infrastructure/database"
	"github.com/martijn/habilitations/pkg/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("HABILITATIONS_DEV_MODE", "1")

	db, err := database.New(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	developers := access.NewDeveloperAccess(db)
	profiles := access.NewProfileAccess(db)

	ctx := context.Background()
	admin, err := profiles.AddProfile(ctx, "admin")
	if err != nil {
		t.Fatalf("failed to add profile: %v", err)
	}
	jane := &domain.Developer{
		LastName: "Doe", FirstName: "Jane", Email: "jane@example.com",
		Password: "s3cretpass", Profile: admin,
	}
	if err := developers.AddDeveloper(ctx, jane); err != nil {
		t.Fatalf("failed to add developer: %v", err)
	}

	cfg := &config.Config{APIHost: "127.0.0.1", APIPort: config.DefaultAPIPort}
	return NewServer(cfg,
		service.NewAuthService(developers),
		service.NewDeveloperService(developers, profiles),
		service.NewProfileService(profiles),
	)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		user       string
		password   string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", "", "", "", http.StatusOK},
		{"metrics are public", http.MethodGet, "/metrics", "", "", "", http.StatusOK},
		{"auth check is public", http.MethodPost, "/auth/check", `{"last_name":"Doe","first_name":"Jane","password":"s3cretpass"}`, "", "", http.StatusOK},
		{"developers without credentials", http.MethodGet, "/developers", "", "", "", http.StatusUnauthorized},
		{"developers with wrong password", http.MethodGet, "/developers", "", "Doe/Jane", "nope", http.StatusUnauthorized},
		{"developers with bad username", http.MethodGet, "/developers", "", "Doe", "s3cretpass", http.StatusUnauthorized},
		{"developers as administrator", http.MethodGet, "/developers", "", "Doe/Jane", "s3cretpass", http.StatusOK},
		{"profiles as administrator", http.MethodGet, "/profiles", "", "Doe/Jane", "s3cretpass", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.user != "" {
				req.SetBasicAuth(tt.user, tt.password)
			}
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if w.Header().Get("X-Request-ID") == "" {
				t.Error("expected a request id header")
			}
		})
	}
}
