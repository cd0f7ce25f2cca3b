package jobs

import (
	"context"
	"log/slog"

	"parceltracking/internal/core/application/usecases/queries"
	"parceltracking/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// DefaultTransitionReportSchedule runs the report at the top of every hour.
const DefaultTransitionReportSchedule = "0 0 * * * *"

// AwaitingTransitionLister returns the parcels whose time gate has opened.
type AwaitingTransitionLister interface {
	Handle(
		ctx context.Context,
		query queries.GetParcelsAwaitingTransitionQuery,
	) ([]queries.GetParcelsAwaitingTransitionQueryResponse, error)
}

// AwaitingTransitionRecorder publishes the backlog size per status.
type AwaitingTransitionRecorder interface {
	SetAwaitingTransition(status string, count int)
}

// gatedStatuses are the statuses whose next move is held back by a date.
var gatedStatuses = []parcel.Status{parcel.Created, parcel.OnRocketToMars}

// TransitionReportJob periodically reports parcels that are ready to move on:
// Created parcels past their launch date and OnRocketToMars parcels past
// their estimated arrival date. Nothing is moved automatically; operators
// still drive every status change.
type TransitionReportJob struct {
	lister   AwaitingTransitionLister
	recorder AwaitingTransitionRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTransitionReportJob creates the report job. schedule is a six-field
// cron expression; an empty value falls back to DefaultTransitionReportSchedule.
func NewTransitionReportJob(
	lister AwaitingTransitionLister,
	recorder AwaitingTransitionRecorder,
	schedule string,
	logger *slog.Logger,
) *TransitionReportJob {
	if schedule == "" {
		schedule = DefaultTransitionReportSchedule
	}
	return &TransitionReportJob{
		lister:   lister,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "transition_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *TransitionReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Transition report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transition report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. Every gated status gets a gauge value, zero
// included, so a drained backlog is visible.
func (j *TransitionReportJob) Run(ctx context.Context) error {
	parcels, err := j.lister.Handle(ctx, queries.NewGetParcelsAwaitingTransitionQuery())
	if err != nil {
		return err
	}

	counts := make(map[parcel.Status]int, len(gatedStatuses))
	for _, p := range parcels {
		counts[p.Status]++
		j.logger.InfoContext(ctx, "Parcel awaiting transition",
			"barcode", p.Barcode,
			"status", p.Status.String(),
			"launchDate", parcel.FormatDate(p.LaunchDate),
			"estimatedArrivalDate", parcel.FormatDate(p.EstimatedArrivalDate),
		)
	}

	for _, status := range gatedStatuses {
		j.recorder.SetAwaitingTransition(status.String(), counts[status])
	}

	return nil
}

// Stop stops the scheduler. A report already running is not interrupted.
func (j *TransitionReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Transition report job stopped")
}
