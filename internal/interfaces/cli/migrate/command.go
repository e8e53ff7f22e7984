package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/casedesk/internal/infrastructure/config"
	"github.com/orris-inc/casedesk/internal/infrastructure/database"
	"github.com/orris-inc/casedesk/internal/infrastructure/migration"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

type options struct {
	env        string
	configPath string
	steps      int
}

// session is what every subcommand works with once the store is open.
type session struct {
	cfg      *config.Config
	db       *gorm.DB
	strategy *migration.GooseStrategy
	log      logger.Interface
}

func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the case store schema",
		Long:  `Apply, roll back and inspect the versioned schema migrations of the case store.`,
	}
	cmd.PersistentFlags().StringVarP(&opts.env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Directory holding config.yaml (default: ./configs)")

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(func(s *session) error {
				s.log.Infow("rolling back migrations", "steps", opts.steps)
				if err := s.strategy.MigrateDown(s.db, opts.steps); err != nil {
					return fmt.Errorf("down migration failed: %w", err)
				}
				return nil
			})
		},
	}
	down.Flags().IntVarP(&opts.steps, "steps", "n", 1, "Number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(func(s *session) error {
					s.log.Infow("applying migrations", "driver", s.cfg.Database.Driver)
					if err := s.strategy.Migrate(s.db); err != nil {
						return fmt.Errorf("migration failed: %w", err)
					}
					return nil
				})
			},
		},
		down,
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.run(func(s *session) error {
					version, err := s.strategy.GetVersion(s.db)
					if err != nil {
						return fmt.Errorf("failed to get migration version: %w", err)
					}
					out := cmd.OutOrStdout()
					fmt.Fprintf(out, "environment: %s\n", opts.env)
					fmt.Fprintf(out, "driver:      %s\n", s.cfg.Database.Driver)
					fmt.Fprintf(out, "version:     %d\n", version)
					return s.strategy.Status(s.db)
				})
			},
		},
	)

	return cmd
}

// run opens the configured store, hands it to fn and closes it afterwards.
func (o *options) run(fn func(*session) error) error {
	var paths []string
	if o.configPath != "" {
		paths = append(paths, o.configPath)
	}
	cfg, err := config.Load(o.env, paths...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.WithComponent("cli.migrate")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return err
	}

	if err := fn(&session{cfg: cfg, db: database.Get(), strategy: strategy, log: log}); err != nil {
		log.Errorw("migrate command failed", "error", err)
		return err
	}
	log.Infow("migrate command completed")
	return nil
}
