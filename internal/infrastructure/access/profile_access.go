package access

import (
	"context"
	"fmt"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/repository"
)

const (
	listProfilesQuery      = `SELECT id, name FROM profile ORDER BY name`
	findProfileQuery       = `SELECT id, name FROM profile WHERE id = :id`
	findProfileByNameQuery = `SELECT id, name FROM profile WHERE name = :name`
	addProfileQuery        = `INSERT INTO profile (name) VALUES (:name)`
)

// ProfileAccess reads and creates profiles. It follows the same degraded-mode
// rules as DeveloperAccess.
type ProfileAccess struct {
	manager Manager
	opts    options
}

var _ repository.ProfileRepository = (*ProfileAccess)(nil)

func NewProfileAccess(manager Manager, opts ...Option) *ProfileAccess {
	return &ProfileAccess{manager: manager, opts: buildOptions(opts)}
}

func (a *ProfileAccess) Available() bool {
	return a.manager != nil
}

func (a *ProfileAccess) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	if a.manager == nil {
		return profiles, nil
	}

	records, err := a.manager.Select(ctx, listProfilesQuery, nil)
	if err != nil {
		return profiles, a.opts.fail("list profiles", err)
	}

	for _, record := range records {
		profile, err := toProfile(record)
		if err != nil {
			return []domain.Profile{}, a.opts.fail("list profiles", err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

// FindProfile looks a profile up by id. The boolean is false when no profile matches.
func (a *ProfileAccess) FindProfile(ctx context.Context, id int) (domain.Profile, bool, error) {
	return a.findOne(ctx, "find profile", findProfileQuery, map[string]any{"id": id})
}

// AddProfile inserts a profile and returns it with the id the database assigned.
func (a *ProfileAccess) AddProfile(ctx context.Context, name string) (domain.Profile, error) {
	if a.manager == nil {
		return domain.Profile{}, nil
	}

	if err := a.manager.Update(ctx, addProfileQuery, map[string]any{"name": name}); err != nil {
		return domain.Profile{}, a.opts.fail("add profile", err)
	}

	profile, found, err := a.findOne(ctx, "add profile", findProfileByNameQuery, map[string]any{"name": name})
	if err != nil {
		return domain.Profile{}, err
	}
	if !found {
		return domain.Profile{}, a.opts.fail("add profile", fmt.Errorf("profile %q missing after insert", name))
	}
	return profile, nil
}

func (a *ProfileAccess) findOne(ctx context.Context, op, query string, params map[string]any) (domain.Profile, bool, error) {
	if a.manager == nil {
		return domain.Profile{}, false, nil
	}

	records, err := a.manager.Select(ctx, query, params)
	if err != nil {
		return domain.Profile{}, false, a.opts.fail(op, err)
	}
	if len(records) == 0 {
		return domain.Profile{}, false, nil
	}

	profile, err := toProfile(records[0])
	if err != nil {
		return domain.Profile{}, false, a.opts.fail(op, err)
	}
	return profile, true, nil
}

func toProfile(record Row) (domain.Profile, error) {
	var row profileRow
	if err := decodeRow(record, &row); err != nil {
		return domain.Profile{}, err
	}
	return domain.NewProfile(row.ID, row.Name), nil
}
