package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/martijn/habilitations/internal/api/dto"
)

func TestListDevelopers(t *testing.T) {
	env := setupTestEnv(t)
	env.seedTestData(t)

	tests := []struct {
		name           string
		path           string
		wantStatus     int
		wantNames      []string
		wantTotal      int
		wantTotalPages int
	}{
		{
			name:           "all developers sorted by last then first name",
			path:           "/developers",
			wantStatus:     http.StatusOK,
			wantNames:      []string{"Brown Alice", "Doe Adam", "Doe Jane", "Smith John"},
			wantTotal:      4,
			wantTotalPages: 1,
		},
		{
			name:           "filter by profile",
			path:           "/developers?query=profile|admin",
			wantStatus:     http.StatusOK,
			wantNames:      []string{"Doe Jane"},
			wantTotal:      1,
			wantTotalPages: 1,
		},
		{
			name:           "filter by last name contains",
			path:           "/developers?query=last_name|contains|o",
			wantStatus:     http.StatusOK,
			wantNames:      []string{"Brown Alice", "Doe Adam", "Doe Jane"},
			wantTotal:      3,
			wantTotalPages: 1,
		},
		{
			name:           "combined filters",
			path:           "/developers?query=last_name|Doe,profile|ne|admin",
			wantStatus:     http.StatusOK,
			wantNames:      []string{"Doe Adam"},
			wantTotal:      1,
			wantTotalPages: 1,
		},
		{
			name:           "second page",
			path:           "/developers?page=2&per_page=3",
			wantStatus:     http.StatusOK,
			wantNames:      []string{"Smith John"},
			wantTotal:      4,
			wantTotalPages: 2,
		},
		{
			name:           "page past the end",
			path:           "/developers?page=5&per_page=3",
			wantStatus:     http.StatusOK,
			wantNames:      []string{},
			wantTotal:      4,
			wantTotalPages: 2,
		},
		{
			name:           "page number near the int limit",
			path:           "/developers?page=9223372036854775807&per_page=100",
			wantStatus:     http.StatusOK,
			wantNames:      []string{},
			wantTotal:      4,
			wantTotalPages: 1,
		},
		{
			name:       "unknown filter field",
			path:       "/developers?query=password|x",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid page",
			path:       "/developers?page=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodGet, tt.path, nil)
			assertStatus(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusOK {
				return
			}

			resp := decodeResponse[dto.DeveloperListResponse](t, w)
			if resp.Pagination.Total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, resp.Pagination.Total)
			}
			if resp.Pagination.TotalPages != tt.wantTotalPages {
				t.Errorf("expected %d pages, got %d", tt.wantTotalPages, resp.Pagination.TotalPages)
			}
			if len(resp.Items) != len(tt.wantNames) {
				t.Fatalf("expected %d items, got %d", len(tt.wantNames), len(resp.Items))
			}
			for i, item := range resp.Items {
				if got := item.LastName + " " + item.FirstName; got != tt.wantNames[i] {
					t.Errorf("item %d: expected %q, got %q", i, tt.wantNames[i], got)
				}
			}
		})
	}
}

func TestListDevelopers_Empty(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/developers", nil)
	assertStatus(t, w, http.StatusOK)

	resp := decodeResponse[dto.DeveloperListResponse](t, w)
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("expected empty item list, got %v", resp.Items)
	}
}

func TestGetDeveloper(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.addProfile(t, "admin")
	jane := env.addDeveloper(t, "Doe", "Jane", "s3cretpass", admin)

	w := env.request(t, http.MethodGet, fmt.Sprintf("/developers/%d", jane.ID), nil)
	assertStatus(t, w, http.StatusOK)

	resp := decodeResponse[dto.DeveloperResponse](t, w)
	if resp.LastName != "Doe" || resp.FirstName != "Jane" {
		t.Errorf("unexpected developer: %+v", resp)
	}
	if resp.Profile.ID != admin.ID() || resp.Profile.Name != "admin" {
		t.Errorf("unexpected profile: %+v", resp.Profile)
	}

	assertStatus(t, env.request(t, http.MethodGet, "/developers/999", nil), http.StatusNotFound)
	assertStatus(t, env.request(t, http.MethodGet, "/developers/abc", nil), http.StatusBadRequest)
}

func TestCreateDeveloper(t *testing.T) {
	env := setupTestEnv(t)
	dev := env.addProfile(t, "developer")

	tests := []struct {
		name       string
		body       dto.CreateDeveloperRequest
		wantStatus int
	}{
		{
			name: "valid developer",
			body: dto.CreateDeveloperRequest{
				LastName: "Smith", FirstName: "John", Phone: "0102030405",
				Email: "john@example.com", Password: "password1", ProfileID: dev.ID(),
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown profile",
			body: dto.CreateDeveloperRequest{
				LastName: "Roe", FirstName: "Richard", Email: "richard@example.com",
				Password: "password1", ProfileID: 999,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid email",
			body: dto.CreateDeveloperRequest{
				LastName: "Roe", FirstName: "Richard", Email: "not-an-email",
				Password: "password1", ProfileID: dev.ID(),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			body: dto.CreateDeveloperRequest{
				LastName: "Roe", FirstName: "Richard", Email: "richard@example.com",
				Password: "short", ProfileID: dev.ID(),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing fields",
			body:       dto.CreateDeveloperRequest{ProfileID: dev.ID()},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.request(t, http.MethodPost, "/developers", tt.body)
			assertStatus(t, w, tt.wantStatus)
			if tt.wantStatus != http.StatusCreated {
				return
			}

			resp := decodeResponse[dto.DeveloperResponse](t, w)
			if resp.ID == 0 {
				t.Error("expected an assigned id")
			}
			if resp.Profile.Name != "developer" {
				t.Errorf("expected profile developer, got %q", resp.Profile.Name)
			}
		})
	}
}

func TestCreateDeveloper_DefaultPasswordIsLastName(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.addProfile(t, "admin")

	body := dto.CreateDeveloperRequest{
		LastName: "Doe", FirstName: "Jane", Email: "jane@example.com", ProfileID: admin.ID(),
	}
	assertStatus(t, env.request(t, http.MethodPost, "/developers", body), http.StatusCreated)

	w := env.request(t, http.MethodPost, "/auth/check", dto.AuthCheckRequest{
		LastName: "Doe", FirstName: "Jane", Password: "Doe",
	})
	assertStatus(t, w, http.StatusOK)
	if resp := decodeResponse[dto.AuthCheckResponse](t, w); !resp.Authenticated {
		t.Error("expected the last name to authenticate as initial password")
	}
}

func TestUpdateDeveloper(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.addProfile(t, "admin")
	dev := env.addProfile(t, "developer")
	jane := env.addDeveloper(t, "Doe", "Jane", "s3cretpass", admin)

	body := dto.UpdateDeveloperRequest{
		LastName: "Doe", FirstName: "Janet", Phone: "0600000000",
		Email: "janet@example.com", ProfileID: dev.ID(),
	}
	w := env.request(t, http.MethodPut, fmt.Sprintf("/developers/%d", jane.ID), body)
	assertStatus(t, w, http.StatusOK)

	resp := decodeResponse[dto.DeveloperResponse](t, w)
	if resp.FirstName != "Janet" || resp.Profile.Name != "developer" {
		t.Errorf("unexpected developer after update: %+v", resp)
	}

	// The password must survive an identity update.
	check := env.request(t, http.MethodPost, "/auth/check", dto.AuthCheckRequest{
		LastName: "Doe", FirstName: "Janet", Password: "s3cretpass",
	})
	assertStatus(t, check, http.StatusOK)
	if decodeResponse[dto.AuthCheckResponse](t, check).Authenticated {
		t.Error("expected authentication to fail once the profile is no longer admin")
	}

	assertStatus(t, env.request(t, http.MethodPut, "/developers/999", body), http.StatusNotFound)

	body.ProfileID = 999
	assertStatus(t, env.request(t, http.MethodPut, fmt.Sprintf("/developers/%d", jane.ID), body), http.StatusBadRequest)
}

func TestUpdatePassword(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.addProfile(t, "admin")
	jane := env.addDeveloper(t, "Doe", "Jane", "s3cretpass", admin)
	john := env.addDeveloper(t, "Smith", "John", "johnspass", admin)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/developers/%d/password", jane.ID),
		dto.UpdatePasswordRequest{Password: "n3wsecret"})
	assertStatus(t, w, http.StatusNoContent)

	checks := []struct {
		last, first, password string
		want                  bool
	}{
		{"Doe", "Jane", "n3wsecret", true},
		{"Doe", "Jane", "s3cretpass", false},
		{"Smith", "John", "johnspass", true},
	}
	for _, c := range checks {
		w := env.request(t, http.MethodPost, "/auth/check", dto.AuthCheckRequest{
			LastName: c.last, FirstName: c.first, Password: c.password,
		})
		assertStatus(t, w, http.StatusOK)
		if got := decodeResponse[dto.AuthCheckResponse](t, w).Authenticated; got != c.want {
			t.Errorf("%s/%s with %q: expected %v, got %v", c.last, c.first, c.password, c.want, got)
		}
	}

	assertStatus(t, env.request(t, http.MethodPut, fmt.Sprintf("/developers/%d/password", john.ID),
		dto.UpdatePasswordRequest{Password: "short"}), http.StatusBadRequest)
	assertStatus(t, env.request(t, http.MethodPut, "/developers/999/password",
		dto.UpdatePasswordRequest{Password: "n3wsecret"}), http.StatusNotFound)
}

func TestDeleteDeveloper(t *testing.T) {
	env := setupTestEnv(t)
	env.seedTestData(t)

	list := decodeResponse[dto.DeveloperListResponse](t, env.request(t, http.MethodGet, "/developers", nil))
	target := list.Items[0]
	path := fmt.Sprintf("/developers/%d", target.ID)

	assertStatus(t, env.request(t, http.MethodDelete, path, nil), http.StatusNoContent)
	assertStatus(t, env.request(t, http.MethodGet, path, nil), http.StatusNotFound)

	// Deleting again is not an error.
	assertStatus(t, env.request(t, http.MethodDelete, path, nil), http.StatusNoContent)

	list = decodeResponse[dto.DeveloperListResponse](t, env.request(t, http.MethodGet, "/developers", nil))
	if list.Pagination.Total != 3 {
		t.Errorf("expected 3 developers left, got %d", list.Pagination.Total)
	}
}
