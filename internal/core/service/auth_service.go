package service

import (
	"context"
	"fmt"

	"github.com/martijn/habilitations/internal/core/domain"
	"github.com/martijn/habilitations/internal/core/repository"
	"github.com/martijn/habilitations/internal/metrics"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	developerRepo repository.DeveloperRepository
}

func NewAuthService(developerRepo repository.DeveloperRepository) *AuthService {
	return &AuthService{
		developerRepo: developerRepo,
	}
}

// Authenticate checks the credentials of an administrator. It is a single
// boolean check: nothing is remembered between calls.
func (s *AuthService) Authenticate(ctx context.Context, lastName, firstName, password string) (bool, error) {
	ok, err := s.developerRepo.Authenticate(ctx, domain.NewAdmin(lastName, firstName, password))
	if err != nil {
		metrics.AuthenticationsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !ok {
		metrics.AuthenticationsTotal.WithLabelValues("denied").Inc()
		log.Info().Str("last_name", lastName).Str("first_name", firstName).Msg("Administrator authentication denied")
		return false, nil
	}

	metrics.AuthenticationsTotal.WithLabelValues("granted").Inc()
	log.Debug().Str("last_name", lastName).Str("first_name", firstName).Msg("Administrator authenticated")
	return true, nil
}
