package cmd

import (
	"log/slog"

	"parceltracking/internal/adapters/in/http"
	"parceltracking/internal/adapters/out/postgres"
	"parceltracking/internal/core/application/usecases/commands"
	"parceltracking/internal/core/application/usecases/queries"
	"parceltracking/internal/core/domain/services"
	"parceltracking/internal/core/ports"
	"parceltracking/internal/jobs"
	"parceltracking/internal/pkg/metrics"

	"github.com/juju/clock"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	calculator services.ScheduleCalculator
	validator  services.TransitionValidator
	collector  *metrics.Collector
	logger     *slog.Logger
}

// NewCompositionRoot wires the service against the wall clock. It fails when
// the configured launch date cannot be parsed.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	collector *metrics.Collector,
	logger *slog.Logger,
) (CompositionRoot, error) {
	nextStandardLaunch, err := configs.NextStandardLaunch()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.WallClock,
		calculator: services.NewScheduleCalculator(nextStandardLaunch),
		validator:  services.NewTransitionValidator(),
		collector:  collector,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	route := commands.Route{Origin: c.configs.Origin, Destination: c.configs.Destination}
	return commands.NewCreateParcelCommandHandler(f, c.calculator, c.clock, route, c.collector)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f, c.validator, c.clock, c.collector, c.logger)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelsAwaitingTransitionQueryHandler() queries.GetParcelsAwaitingTransitionQueryHandler {
	return queries.NewGetParcelsAwaitingTransitionQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateGetParcelQueryHandler(),
		c.CreateGetParcelsAwaitingTransitionQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetParcelsAwaitingTransitionQueryHandler(),
		c.collector,
		c.configs.TransitionReportSchedule,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}
