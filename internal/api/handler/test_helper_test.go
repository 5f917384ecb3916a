package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/service"
	"github.com/martijn/habilitations/internal/infrastructure/access"
	"github.com/martijn/habilitations/internal/infrastructure/database"
)

// testEnv holds all test dependencies
type testEnv struct {
	db         *database.DB
	router     *gin.Engine
	developers *access.DeveloperAccess
	profiles   *access.ProfileAccess
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.New(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	developers := access.NewDeveloperAccess(db)
	profiles := access.NewProfileAccess(db)

	authHandler := NewAuthHandler(service.NewAuthService(developers))
	developerHandler := NewDeveloperHandler(service.NewDeveloperService(developers, profiles))
	profileHandler := NewProfileHandler(service.NewProfileService(profiles))

	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Register routes without auth middleware
	router.POST("/auth/check", authHandler.Check)
	router.GET("/developers", developerHandler.ListDevelopers)
	router.GET("/developers/:id", developerHandler.GetDeveloper)
	router.POST("/developers", developerHandler.CreateDeveloper)
	router.PUT("/developers/:id", developerHandler.UpdateDeveloper)
	router.PUT("/developers/:id/password", developerHandler.UpdatePassword)
	router.DELETE("/developers/:id", developerHandler.DeleteDeveloper)
	router.GET("/profiles", profileHandler.ListProfiles)
	router.POST("/profiles", profileHandler.CreateProfile)

	return &testEnv{
		db:         db,
		router:     router,
		developers: developers,
		profiles:   profiles,
	}
}

func (env *testEnv) addProfile(t *testing.T, name string) domain.Profile {
	t.Helper()

	profile, err := env.profiles.AddProfile(context.Background(), name)
	if err != nil {
		t.Fatalf("failed to add profile %s: %v", name, err)
	}
	return profile
}

func (env *testEnv) addDeveloper(t *testing.T, lastName, firstName, password string, profile domain.Profile) *domain.Developer {
	t.Helper()

	developer := &domain.Developer{
		LastName:  lastName,
		FirstName: firstName,
		Phone:     "0102030405",
		Email:     firstName + "." + lastName + "@example.com",
		Password:  password,
		Profile:   profile,
	}
	if err := env.developers.AddDeveloper(context.Background(), developer); err != nil {
		t.Fatalf("failed to add developer %s %s: %v", firstName, lastName, err)
	}

	developers, err := env.developers.ListDevelopers(context.Background())
	if err != nil {
		t.Fatalf("failed to list developers: %v", err)
	}
	for _, d := range developers {
		if d.LastName == lastName && d.FirstName == firstName {
			return d
		}
	}
	t.Fatalf("developer %s %s not stored", firstName, lastName)
	return nil
}

// seedTestData stores two profiles and four developers
func (env *testEnv) seedTestData(t *testing.T) {
	t.Helper()

	admin := env.addProfile(t, "admin")
	dev := env.addProfile(t, "developer")

	env.addDeveloper(t, "Doe", "Jane", "s3cretpass", admin)
	env.addDeveloper(t, "Doe", "Adam", "password1", dev)
	env.addDeveloper(t, "Smith", "John", "password2", dev)
	env.addDeveloper(t, "Brown", "Alice", "password3", dev)
}

// request performs a request against the test router
func (env *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decodeResponse decodes a JSON response body into the given type
func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode response: %v, body: %s", err, w.Body.String())
	}
	return result
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()

	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}
