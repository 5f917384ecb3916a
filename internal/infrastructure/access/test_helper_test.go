package access

import (
	"context"
	"testing"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/infrastructure/database"
)

// testEnv holds an in-memory database and the accesses built on it
type testEnv struct {
	db         *database.DB
	developers *DeveloperAccess
	profiles   *ProfileAccess
}

func setupTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()

	db, err := database.New(database.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &testEnv{
		db:         db,
		developers: NewDeveloperAccess(db, opts...),
		profiles:   NewProfileAccess(db, opts...),
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

func (env *testEnv) addDeveloper(t *testing.T, lastName, firstName, password string, profile domain.Profile) {
	t.Helper()

	developer := &domain.Developer{
		LastName:  lastName,
		FirstName: firstName,
		Phone:     "0102030405",
		Email:     firstName + "@example.com",
		Password:  password,
		Profile:   profile,
	}
	if err := env.developers.AddDeveloper(context.Background(), developer); err != nil {
		t.Fatalf("failed to add developer %s %s: %v", firstName, lastName, err)
	}
}

// find returns the listed developer with the given names
func (env *testEnv) find(t *testing.T, lastName, firstName string) *domain.Developer {
	t.Helper()

	developers, err := env.developers.ListDevelopers(context.Background())
	if err != nil {
		t.Fatalf("failed to list developers: %v", err)
	}
	for _, d := range developers {
		if d.LastName == lastName && d.FirstName == firstName {
			return d
		}
	}
	t.Fatalf("developer %s %s not found", firstName, lastName)
	return nil
}

// storedRow is the raw developer row, password hash included
type storedRow struct {
	ID           int    `db:"id"`
	LastName     string `db:"last_name"`
	FirstName    string `db:"first_name"`
	Phone        string `db:"phone"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	ProfileID    int    `db:"profile_id"`
}

func (env *testEnv) storedRows(t *testing.T) map[int]storedRow {
	t.Helper()

	var rows []storedRow
	if err := env.db.DB.Select(&rows, "SELECT id, last_name, first_name, phone, email, password_hash, profile_id FROM developer"); err != nil {
		t.Fatalf("failed to read developer rows: %v", err)
	}

	byID := make(map[int]storedRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	return byID
}

// stubManager answers every statement with fixed rows or a fixed error
type stubManager struct {
	rows    []Row
	err     error
	queries []string
	params  []map[string]any
}

func (m *stubManager) Select(_ context.Context, query string, params map[string]any) ([]Row, error) {
	m.queries = append(m.queries, query)
	m.params = append(m.params, params)
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func (m *stubManager) Update(_ context.Context, query string, params map[string]any) error {
	m.queries = append(m.queries, query)
	m.params = append(m.params, params)
	return m.err
}
