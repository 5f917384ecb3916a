package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/repository"
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *ProfileService) Create(ctx context.Context, name string) (domain.Profile, error) {
	if err := validate.Var(name, "required,max=50"); err != nil {
		return domain.Profile{}, badRequest("name is required and must be at most 50 characters")
	}

	profiles, err := s.List(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	for _, p := range profiles {
		if p.Name() == name {
			return domain.Profile{}, NewServiceError(http.StatusConflict, fmt.Sprintf("profile already exists: %s", name))
		}
	}

	profile, err := s.profileRepo.AddProfile(ctx, name)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}
