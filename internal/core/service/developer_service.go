package service

import (
	"context"
	"fmt"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/repository"
	"github.com/rs/zerolog/log"
)

type DeveloperService struct {
	developerRepo repository.DeveloperRepository
	profileRepo   repository.ProfileRepository
}

func NewDeveloperService(developerRepo repository.DeveloperRepository, profileRepo repository.ProfileRepository) *DeveloperService {
	return &DeveloperService{
		developerRepo: developerRepo,
		profileRepo:   profileRepo,
	}
}

func (s *DeveloperService) List(ctx context.Context) ([]*domain.Developer, error) {
	developers, err := s.developerRepo.ListDevelopers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list developers: %w", err)
	}
	return developers, nil
}

func (s *DeveloperService) Get(ctx context.Context, id int) (*domain.Developer, error) {
	developers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, developer := range developers {
		if developer.ID == id {
			return developer, nil
		}
	}
	return nil, notFound(fmt.Sprintf("developer not found: %d", id))
}

// Create validates and stores a new developer and returns it as stored.
//
// When no password is given, the initial password is the developer's last
// name. Earlier versions of the tool always did this; it is kept as an
// explicit, logged rule so existing accounts keep working.
func (s *DeveloperService) Create(ctx context.Context, developer *domain.Developer) (*domain.Developer, error) {
	if err := validate.Struct(developer); err != nil {
		return nil, validationError(err)
	}

	if s.degraded() {
		logSkippedWrite("create developer")
		created := *developer
		created.Password = ""
		return &created, nil
	}

	profile, err := s.resolveProfile(ctx, developer.Profile.ID())
	if err != nil {
		return nil, err
	}

	toStore := *developer
	toStore.Profile = profile
	if toStore.Password == "" {
		log.Warn().
			Str("last_name", toStore.LastName).
			Str("first_name", toStore.FirstName).
			Msg("No password supplied; initial password set to the last name")
		toStore.Password = toStore.LastName
	} else if err := validatePassword(toStore.Password); err != nil {
		return nil, err
	}

	if err := s.developerRepo.AddDeveloper(ctx, &toStore); err != nil {
		return nil, fmt.Errorf("failed to create developer: %w", err)
	}

	created, err := s.findCreated(ctx, &toStore)
	if err != nil {
		return nil, err
	}

	log.Info().Int("id", created.ID).Str("profile", created.Profile.Name()).Msg("Developer created")
	return created, nil
}

// Update rewrites the identity and profile of an existing developer. The
// password is never changed here; see ChangePassword.
func (s *DeveloperService) Update(ctx context.Context, developer *domain.Developer) (*domain.Developer, error) {
	if err := validate.Struct(developer); err != nil {
		return nil, validationError(err)
	}

	if s.degraded() {
		logSkippedWrite("update developer")
		updated := *developer
		updated.Password = ""
		return &updated, nil
	}

	if _, err := s.Get(ctx, developer.ID); err != nil {
		return nil, err
	}

	profile, err := s.resolveProfile(ctx, developer.Profile.ID())
	if err != nil {
		return nil, err
	}

	toStore := *developer
	toStore.Profile = profile
	toStore.Password = ""
	if err := s.developerRepo.UpdateDeveloper(ctx, &toStore); err != nil {
		return nil, fmt.Errorf("failed to update developer: %w", err)
	}

	log.Info().Int("id", toStore.ID).Msg("Developer updated")
	return &toStore, nil
}

func (s *DeveloperService) ChangePassword(ctx context.Context, id int, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	if s.degraded() {
		logSkippedWrite("update password")
		return nil
	}

	developer, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	developer.Password = password
	if err := s.developerRepo.UpdatePassword(ctx, developer); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Info().Int("id", id).Msg("Developer password changed")
	return nil
}

// Delete removes a developer. Unknown ids are not an error.
func (s *DeveloperService) Delete(ctx context.Context, id int) error {
	if err := s.developerRepo.DeleteDeveloper(ctx, &domain.Developer{ID: id}); err != nil {
		return fmt.Errorf("failed to delete developer: %w", err)
	}

	log.Info().Int("id", id).Msg("Developer deleted")
	return nil
}

func (s *DeveloperService) resolveProfile(ctx context.Context, id int) (domain.Profile, error) {
	profile, found, err := s.profileRepo.FindProfile(ctx, id)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to find profile: %w", err)
	}
	if !found {
		return domain.Profile{}, badRequest(fmt.Sprintf("unknown profile: %d", id))
	}
	return profile, nil
}

// degraded reports whether storage is missing. Writes are then accepted and
// dropped, without the existence and profile checks that would read storage.
func (s *DeveloperService) degraded() bool {
	return !s.developerRepo.Available() || !s.profileRepo.Available()
}

func logSkippedWrite(op string) {
	log.Warn().Str("op", op).Msg("Storage unavailable; write skipped")
}

// findCreated returns the most recent developer matching the stored fields,
// since inserts do not report the assigned id.
//
// Two concurrent creates of identical developers (same names and email) both
// get the higher id back. Callers needing exact ids must not create
// duplicates concurrently.
func (s *DeveloperService) findCreated(ctx context.Context, stored *domain.Developer) (*domain.Developer, error) {
	developers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var created *domain.Developer
	for _, d := range developers {
		if d.LastName == stored.LastName && d.FirstName == stored.FirstName && d.Email == stored.Email {
			if created == nil || d.ID > created.ID {
				created = d
			}
		}
	}
	if created == nil {
		return nil, fmt.Errorf("developer %s %s missing after insert", stored.FirstName, stored.LastName)
	}
	return created, nil
}
