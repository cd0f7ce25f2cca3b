package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"parceltracking/internal/core/application/usecases/commands"
	"parceltracking/internal/core/application/usecases/queries"
	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/generated/servers"
	"parceltracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	msgParcelAlreadyExists = "Parcel already exists"
	msgNewStatusRequired   = "newStatus must have a value."
	msgUpdateFailed        = "Update Failed: An error occurred while updating the parcel status."
	msgInvalidRequestBody  = "Invalid request body"
)

type CreateParcelHandler interface {
	Handle(ctx context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error)
}

type UpdateParcelStatusHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateParcelStatusCommand) error
}

type GetParcelHandler interface {
	Handle(ctx context.Context, query queries.GetParcelQuery) (queries.GetParcelQueryResponse, error)
}

type GetParcelsAwaitingTransitionHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetParcelsAwaitingTransitionQuery,
	) ([]queries.GetParcelsAwaitingTransitionQueryResponse, error)
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler       CreateParcelHandler
	updateParcelStatusHandler UpdateParcelStatusHandler

	// Query handlers
	getParcelHandler                    GetParcelHandler
	getParcelsAwaitingTransitionHandler GetParcelsAwaitingTransitionHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler CreateParcelHandler,
	updateParcelStatusHandler UpdateParcelStatusHandler,
	getParcelHandler GetParcelHandler,
	getParcelsAwaitingTransitionHandler GetParcelsAwaitingTransitionHandler,
) *Server {
	return &Server{
		createParcelHandler:                 createParcelHandler,
		updateParcelStatusHandler:           updateParcelStatusHandler,
		getParcelHandler:                    getParcelHandler,
		getParcelsAwaitingTransitionHandler: getParcelsAwaitingTransitionHandler,
	}
}

// CreateParcel handles POST /parcels - registers a new parcel and returns it
// with its computed schedule.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body servers.CreateParcelJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, msgInvalidRequestBody)
	}

	cmd, err := commands.NewCreateParcelCommand(
		body.Barcode,
		body.Sender,
		body.Recipient,
		body.Contents,
		body.DeliveryService,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return errorJSON(ctx, http.StatusBadRequest, msgParcelAlreadyExists)
	case errors.Is(err, errs.ErrInvalidService):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	case err != nil:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create parcel")
	}

	return ctx.JSON(http.StatusCreated, parcelFromAggregate(created))
}

// GetParcel handles GET /parcels/{barcode} - returns the parcel with its
// audit trail.
func (s *Server) GetParcel(ctx echo.Context, barcode string) error {
	code, err := kernel.NewBarcode(barcode)
	if err != nil {
		return notFound(ctx, barcode)
	}

	query, err := queries.NewGetParcelQuery(code)
	if err != nil {
		return notFound(ctx, barcode)
	}

	resp, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, barcode)
	case err != nil:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve parcel")
	}

	return ctx.JSON(http.StatusOK, parcelFromQuery(resp))
}

// UpdateParcelStatus handles PATCH /parcels/{barcode} - moves the parcel to
// the requested status if the transition rules allow it.
func (s *Server) UpdateParcelStatus(ctx echo.Context, barcode string) error {
	var body servers.UpdateParcelStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, msgInvalidRequestBody)
	}

	code, err := kernel.NewBarcode(barcode)
	if err != nil {
		return notFound(ctx, barcode)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(code, body.NewStatus)
	if err != nil {
		return notFound(ctx, barcode)
	}

	err = s.updateParcelStatusHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return ctx.NoContent(http.StatusOK)
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, barcode)
	case errors.Is(err, errs.ErrValueIsRequired):
		return errorJSON(ctx, http.StatusBadRequest, msgNewStatusRequired)
	case errors.Is(err, errs.ErrTransitionRejected):
		var rejected *errs.TransitionRejectedError
		if errors.As(err, &rejected) {
			return errorJSON(ctx, http.StatusBadRequest, rejected.Reason)
		}
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, msgUpdateFailed)
	}
}

// GetParcelsAwaitingTransition handles GET /parcels/awaiting-transition -
// lists parcels whose launch or arrival date has passed.
func (s *Server) GetParcelsAwaitingTransition(ctx echo.Context) error {
	query := queries.NewGetParcelsAwaitingTransitionQuery()

	parcels, err := s.getParcelsAwaitingTransitionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve parcels")
	}

	response := make([]servers.AwaitingTransition, len(parcels))
	for i, p := range parcels {
		response[i] = servers.AwaitingTransition{
			Barcode:              p.Barcode,
			Status:               servers.ParcelStatus(p.Status.String()),
			LaunchDate:           openapi_types.Date{Time: p.LaunchDate},
			EstimatedArrivalDate: openapi_types.Date{Time: p.EstimatedArrivalDate},
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func notFound(ctx echo.Context, barcode string) error {
	return errorJSON(ctx, http.StatusNotFound, fmt.Sprintf("Parcel with barcode: '%s' not found.", barcode))
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func parcelFromAggregate(p *parcel.Parcel) servers.Parcel {
	details := p.Details()
	schedule := p.Schedule()

	history := make([]servers.HistoryEntry, len(p.History()))
	for i, entry := range p.History() {
		history[i] = servers.HistoryEntry{
			Status:    servers.ParcelStatus(entry.Status().String()),
			Timestamp: entry.Timestamp(),
		}
	}

	return servers.Parcel{
		Barcode:              p.Barcode().String(),
		Sender:               details.Sender,
		Recipient:            details.Recipient,
		Contents:             details.Contents,
		Status:               servers.ParcelStatus(p.Status().String()),
		DeliveryService:      p.DeliveryService().String(),
		LaunchDate:           openapi_types.Date{Time: schedule.LaunchDate()},
		EtaDays:              schedule.EtaDays(),
		EstimatedArrivalDate: openapi_types.Date{Time: schedule.EstimatedArrivalDate()},
		Origin:               details.Origin,
		Destination:          details.Destination,
		LastUpdated:          p.LastUpdated(),
		History:              history,
	}
}

func parcelFromQuery(resp queries.GetParcelQueryResponse) servers.Parcel {
	history := make([]servers.HistoryEntry, len(resp.History))
	for i, item := range resp.History {
		history[i] = servers.HistoryEntry{
			Status:    servers.ParcelStatus(item.Status.String()),
			Timestamp: item.Timestamp,
		}
	}

	return servers.Parcel{
		Barcode:              resp.Barcode,
		Sender:               resp.Sender,
		Recipient:            resp.Recipient,
		Contents:             resp.Contents,
		Status:               servers.ParcelStatus(resp.Status.String()),
		DeliveryService:      resp.DeliveryService,
		LaunchDate:           openapi_types.Date{Time: resp.LaunchDate},
		EtaDays:              resp.EtaDays,
		EstimatedArrivalDate: openapi_types.Date{Time: resp.EstimatedArrivalDate},
		Origin:               resp.Origin,
		Destination:          resp.Destination,
		LastUpdated:          resp.LastUpdated,
		History:              history,
	}
}
