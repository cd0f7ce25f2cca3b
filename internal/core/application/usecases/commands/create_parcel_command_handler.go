package commands

import (
	"context"

	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/core/domain/services"
	"parceltracking/internal/core/ports"
	"parceltracking/internal/pkg/errs"
)

// Route is the fixed origin and destination stamped on every new parcel.
type Route struct {
	Origin      string
	Destination string
}

// CreateParcelCommandHandler registers new parcels. The clock is read once
// per call; the same instant drives the launch schedule, the Created audit
// entry and lastUpdated.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory, calculator, clock.WallClock, route, collector)
//	p, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    // barcode already registered
//	case err != nil:
//	    return err
//	}
//	fmt.Println(p.Schedule().LaunchDate())
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	calculator services.ScheduleCalculator
	clock      ports.Clock
	route      Route
	recorder   CreationRecorder
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	calculator services.ScheduleCalculator,
	clock ports.Clock,
	route Route,
	recorder CreationRecorder,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		clock:      clock,
		route:      route,
		recorder:   recorder,
	}
}

// Handle computes the schedule for the requested tier and persists the
// parcel in Created status.
//
// Returns ObjectAlreadyExistsError when the barcode is taken, whether found
// up front or reported by storage on insert.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()

	schedule, err := h.calculator.Calculate(cmd.DeliveryService(), now)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ParcelRepository()

	exists, err := repo.Exists(ctx, cmd.Barcode())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("barcode", cmd.Barcode().String())
	}

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		cmd.Barcode(),
		parcel.Details{
			Sender:      cmd.Sender(),
			Recipient:   cmd.Recipient(),
			Contents:    cmd.Contents(),
			Origin:      h.route.Origin,
			Destination: h.route.Destination,
		},
		cmd.DeliveryService(),
		schedule,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.recorder.ParcelCreated(cmd.DeliveryService().String())
	return p, nil
}
