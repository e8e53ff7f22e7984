package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/casedesk/internal/infrastructure/config"
	"github.com/orris-inc/casedesk/internal/infrastructure/database"
	"github.com/orris-inc/casedesk/internal/infrastructure/repository"
	seeddata "github.com/orris-inc/casedesk/internal/infrastructure/seed"
	"github.com/orris-inc/casedesk/internal/shared/biztime"
	"github.com/orris-inc/casedesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Create the default administrator and issue categories. Existing rows are left alone, so the command can be re-run.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Directory holding config.yaml (default: ./configs)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (default: built-in data)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	cfg, err := config.Load(env, paths...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Business.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	var raw []byte
	if file != "" {
		raw, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	data, err := seeddata.Parse(raw)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	seeder := seeddata.NewSeeder(
		repository.NewEmployeeRepository(db, log),
		repository.NewCategoryRepository(db, log),
		log,
	)

	result, err := seeder.Run(context.Background(), data)
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seed completed: %d employees, %d categories created\n",
		result.EmployeesCreated, result.CategoriesCreated)
	return nil
}
