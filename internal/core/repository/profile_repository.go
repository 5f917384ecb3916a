package repository

import (
	"context"

	"github.com/martijn/habilitations/internal/core/domain"
)

type ProfileRepository interface {
	Available() bool
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	FindProfile(ctx context.Context, id int) (domain.Profile, bool, error)
	AddProfile(ctx context.Context, name string) (domain.Profile, error)
}
