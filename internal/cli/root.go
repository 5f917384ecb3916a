package cli

import (
	"fmt"

	"github.com/martijn/habilitations/internal/core/repository"
	"github.com/martijn/habilitations/internal/core/service"
	"github.com/martijn/habilitations/internal/infrastructure/access"
	"github.com/martijn/habilitations/internal/infrastructure/database"
	"github.com/martijn/habilitations/internal/logging"
	"github.com/martijn/habilitations/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "habilitations",
	Short: "Habilitations - developer account administration",
	Long: `Habilitations manages developer accounts and the profile each of them holds.

It provides:
- Administrator authentication against stored password hashes
- Listing, creation, update and deletion of developers
- Profile management
- REST API for remote administration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logging.Setup(logging.Options{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSizeMB:  cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
			MaxAgeDays: cfg.LogMaxAgeDays,
		})

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultConfigPath+")")
}

// Services holds all initialized services
type Services struct {
	DB               *database.DB
	DeveloperRepo    repository.DeveloperRepository
	ProfileRepo      repository.ProfileRepository
	AuthService      *service.AuthService
	DeveloperService *service.DeveloperService
	ProfileService   *service.ProfileService
}

// initServices opens the database and builds the services on top of it.
//
// With failFast, any storage error ends the process. Without it, errors are
// returned to the caller, and a database that cannot be opened leaves the
// services in degraded mode: reads are empty and writes do nothing.
func initServices(failFast bool) (*Services, error) {
	opts := []access.Option{access.WithAdminRole(cfg.AdminRole)}
	if failFast {
		opts = append(opts, access.WithFailurePolicy(exitOnFailure))
	}

	var manager access.Manager
	db, err := database.New(cfg.DBDriver, cfg.DBDSN)
	switch {
	case err == nil:
		manager = db
	case failFast:
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	default:
		log.Warn().Err(err).Str("driver", cfg.DBDriver).Msg("Database unavailable; running in degraded mode")
	}

	developerRepo := access.NewDeveloperAccess(manager, opts...)
	profileRepo := access.NewProfileAccess(manager, opts...)

	return &Services{
		DB:               db,
		DeveloperRepo:    developerRepo,
		ProfileRepo:      profileRepo,
		AuthService:      service.NewAuthService(developerRepo),
		DeveloperService: service.NewDeveloperService(developerRepo, profileRepo),
		ProfileService:   service.NewProfileService(profileRepo),
	}, nil
}

// exitOnFailure is the fail-fast policy: storage errors end the process.
func exitOnFailure(op string, err error) {
	log.Fatal().Err(err).Str("op", op).Msg("Storage failure")
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
