package repository

import (
	"context"

	"github.com/martijn/habilitations/internal/core/domain"
)

// DeveloperRepository stores developer accounts. When Available reports false
// the repository is degraded: reads are empty and writes do nothing.
type DeveloperRepository interface {
	Available() bool
	Authenticate(ctx context.Context, admin domain.Admin) (bool, error)
	ListDevelopers(ctx context.Context) ([]*domain.Developer, error)
	AddDeveloper(ctx context.Context, developer *domain.Developer) error
	UpdateDeveloper(ctx context.Context, developer *domain.Developer) error
	UpdatePassword(ctx context.Context, developer *domain.Developer) error
	DeleteDeveloper(ctx context.Context, developer *domain.Developer) error
}
