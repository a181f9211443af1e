package cli

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/solrange/fitsim/internal/adapters/persistence"
	fittingCmd "github.com/solrange/fitsim/internal/application/fitting/commands"
	"github.com/solrange/fitsim/internal/application/mediator"
	mutationCmd "github.com/solrange/fitsim/internal/application/mutation/commands"
	simQuery "github.com/solrange/fitsim/internal/application/simulation/queries"
	"github.com/solrange/fitsim/internal/domain/capacitor"
	"github.com/solrange/fitsim/internal/domain/damage"
	"github.com/solrange/fitsim/internal/infrastructure/config"
	"github.com/solrange/fitsim/internal/infrastructure/database"
)

// app wires configuration, database, repositories and the mediator for one
// CLI invocation.
type app struct {
	cfg *config.Config
	db  *gorm.DB
	m   mediator.Mediator

	fits *persistence.GormFitRepository
}

// newApp loads configuration, opens the database and registers all
// command/query handlers.
func newApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if verbose {
		fmt.Printf("Using %s database, simulation ceiling %.0fs / %d steps\n",
			cfg.Database.Type, cfg.Simulation.MaxSimulatedSeconds, cfg.Simulation.MaxSteps)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	fitRepo := persistence.NewGormFitRepository(db)
	itemTypeRepo := persistence.NewGormItemTypeRepository(db)
	mutationRepo := persistence.NewGormMutationRepository(db)

	simulator := capacitor.NewSimulatorWithLimits(cfg.Simulation.MaxSimulatedSeconds, cfg.Simulation.MaxSteps)
	calculator := damage.NewCalculator(itemTypeRepo)

	m := mediator.NewMediator()
	registrations := []error{
		mediator.RegisterHandler[*fittingCmd.ImportFitCommand](m, fittingCmd.NewImportFitHandler(fitRepo)),
		mediator.RegisterHandler[*simQuery.GetCapacitorStabilityQuery](m, simQuery.NewGetCapacitorStabilityHandler(fitRepo, simulator)),
		mediator.RegisterHandler[*simQuery.GetDamageProfileQuery](m, simQuery.NewGetDamageProfileHandler(fitRepo, calculator)),
		mediator.RegisterHandler[*mutationCmd.ApplyMutationCommand](m, mutationCmd.NewApplyMutationHandler(mutationRepo, nil)),
		mediator.RegisterHandler[*mutationCmd.ClearMutationCommand](m, mutationCmd.NewClearMutationHandler(mutationRepo)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}

	return &app{cfg: cfg, db: db, m: m, fits: fitRepo}, nil
}

// Close releases the database connection.
func (a *app) Close() {
	_ = database.Close(a.db)
}
