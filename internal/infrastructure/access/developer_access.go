package access

import (
	"context"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/repository"
)

const (
	authenticateQuery = `
		SELECT d.id AS id
		FROM developer d
		JOIN profile p ON d.profile_id = p.id
		WHERE d.last_name = :last_name
		  AND d.first_name = :first_name
		  AND d.password_hash = SHA2(:pwd, 256)
		  AND p.name = :role
	`

	listDevelopersQuery = `
		SELECT d.id AS id, d.last_name AS last_name, d.first_name AS first_name,
		       d.phone AS phone, d.email AS email,
		       p.id AS profile_id, p.name AS profile_name
		FROM developer d
		JOIN profile p ON d.profile_id = p.id
		ORDER BY d.last_name, d.first_name, d.id
	`

	addDeveloperQuery = `
		INSERT INTO developer (last_name, first_name, phone, email, password_hash, profile_id)
		VALUES (:last_name, :first_name, :phone, :email, SHA2(:pwd, 256), :profile_id)
	`

	updateDeveloperQuery = `
		UPDATE developer
		SET last_name = :last_name, first_name = :first_name, phone = :phone,
		    email = :email, profile_id = :profile_id
		WHERE id = :id
	`

	updatePasswordQuery = `
		UPDATE developer
		SET password_hash = SHA2(:pwd, 256)
		WHERE id = :id
	`

	deleteDeveloperQuery = `DELETE FROM developer WHERE id = :id`
)

// DeveloperAccess reads and writes developer accounts through a Manager.
//
// Without a Manager the access runs degraded: reads return empty results,
// Authenticate returns false and writes do nothing. None of these are errors.
type DeveloperAccess struct {
	manager Manager
	opts    options
}

var _ repository.DeveloperRepository = (*DeveloperAccess)(nil)

func NewDeveloperAccess(manager Manager, opts ...Option) *DeveloperAccess {
	return &DeveloperAccess{manager: manager, opts: buildOptions(opts)}
}

// Available reports whether a Manager backs this access.
func (a *DeveloperAccess) Available() bool {
	return a.manager != nil
}

// Authenticate reports whether the credentials belong to a developer holding
// the administrator profile. The password is hashed by the database engine.
func (a *DeveloperAccess) Authenticate(ctx context.Context, admin domain.Admin) (bool, error) {
	if a.manager == nil {
		return false, nil
	}

	records, err := a.manager.Select(ctx, authenticateQuery, map[string]any{
		"last_name":  admin.LastName,
		"first_name": admin.FirstName,
		"pwd":        admin.Password,
		"role":       a.opts.adminRole,
	})
	if err != nil {
		return false, a.opts.fail("authenticate", err)
	}
	return len(records) > 0, nil
}

// ListDevelopers returns every developer with its profile, sorted by last name
// then first name. The result is never nil.
func (a *DeveloperAccess) ListDevelopers(ctx context.Context) ([]*domain.Developer, error) {
	developers := []*domain.Developer{}
	if a.manager == nil {
		return developers, nil
	}

	records, err := a.manager.Select(ctx, listDevelopersQuery, nil)
	if err != nil {
		return developers, a.opts.fail("list developers", err)
	}

	for _, record := range records {
		var row developerRow
		if err := decodeRow(record, &row); err != nil {
			return []*domain.Developer{}, a.opts.fail("list developers", err)
		}
		profile := domain.NewProfile(row.ProfileID, row.ProfileName)
		developers = append(developers, domain.NewDeveloper(row.ID, row.LastName, row.FirstName, row.Phone, row.Email, profile))
	}
	return developers, nil
}

// AddDeveloper inserts a developer. The storage engine assigns the id and
// hashes developer.Password; developer.Profile must reference an existing profile.
func (a *DeveloperAccess) AddDeveloper(ctx context.Context, developer *domain.Developer) error {
	if a.manager == nil {
		return nil
	}

	err := a.manager.Update(ctx, addDeveloperQuery, map[string]any{
		"last_name":  developer.LastName,
		"first_name": developer.FirstName,
		"phone":      developer.Phone,
		"email":      developer.Email,
		"pwd":        developer.Password,
		"profile_id": developer.Profile.ID(),
	})
	if err != nil {
		return a.opts.fail("add developer", err)
	}
	return nil
}

// UpdateDeveloper rewrites identity fields and profile of the developer with
// the same id. The stored password is left alone.
func (a *DeveloperAccess) UpdateDeveloper(ctx context.Context, developer *domain.Developer) error {
	if a.manager == nil {
		return nil
	}

	err := a.manager.Update(ctx, updateDeveloperQuery, map[string]any{
		"id":         developer.ID,
		"last_name":  developer.LastName,
		"first_name": developer.FirstName,
		"phone":      developer.Phone,
		"email":      developer.Email,
		"profile_id": developer.Profile.ID(),
	})
	if err != nil {
		return a.opts.fail("update developer", err)
	}
	return nil
}

// UpdatePassword replaces only the stored hash, computed from developer.Password.
func (a *DeveloperAccess) UpdatePassword(ctx context.Context, developer *domain.Developer) error {
	if a.manager == nil {
		return nil
	}

	err := a.manager.Update(ctx, updatePasswordQuery, map[string]any{
		"id":  developer.ID,
		"pwd": developer.Password,
	})
	if err != nil {
		return a.opts.fail("update password", err)
	}
	return nil
}

// DeleteDeveloper removes the developer with the same id. Unknown ids are ignored.
func (a *DeveloperAccess) DeleteDeveloper(ctx context.Context, developer *domain.Developer) error {
	if a.manager == nil {
		return nil
	}

	err := a.manager.Update(ctx, deleteDeveloperQuery, map[string]any{
		"id": developer.ID,
	})
	if err != nil {
		return a.opts.fail("delete developer", err)
	}
	return nil
}
