package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "parceltracking/internal/adapters/in/http"
	"parceltracking/internal/core/application/usecases/commands"
	"parceltracking/internal/core/application/usecases/queries"
	"parceltracking/internal/core/domain/model/kernel"
	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/generated/servers"
	"parceltracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validBarcode = "RMARS1234567890123456789M"

type MockCreateParcelHandler struct{ mock.Mock }

func (m *MockCreateParcelHandler) Handle(ctx context.Context, cmd commands.CreateParcelCommand) (*parcel.Parcel, error) {
	args := m.Called(ctx, cmd)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

type MockUpdateParcelStatusHandler struct{ mock.Mock }

func (m *MockUpdateParcelStatusHandler) Handle(ctx context.Context, cmd commands.UpdateParcelStatusCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockGetParcelHandler struct{ mock.Mock }

func (m *MockGetParcelHandler) Handle(ctx context.Context, query queries.GetParcelQuery) (queries.GetParcelQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(queries.GetParcelQueryResponse)
	return resp, args.Error(1)
}

type MockGetParcelsAwaitingTransitionHandler struct{ mock.Mock }

func (m *MockGetParcelsAwaitingTransitionHandler) Handle(
	ctx context.Context,
	query queries.GetParcelsAwaitingTransitionQuery,
) ([]queries.GetParcelsAwaitingTransitionQueryResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).([]queries.GetParcelsAwaitingTransitionQueryResponse)
	return resp, args.Error(1)
}

type fixture struct {
	echo     *echo.Echo
	create   *MockCreateParcelHandler
	update   *MockUpdateParcelStatusHandler
	get      *MockGetParcelHandler
	awaiting *MockGetParcelsAwaitingTransitionHandler
}

func newFixture() fixture {
	f := fixture{
		echo:     echo.New(),
		create:   &MockCreateParcelHandler{},
		update:   &MockUpdateParcelStatusHandler{},
		get:      &MockGetParcelHandler{},
		awaiting: &MockGetParcelsAwaitingTransitionHandler{},
	}
	servers.RegisterHandlers(f.echo, httpadapter.NewServer(f.create, f.update, f.get, f.awaiting))
	return f
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func createdParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	barcode, err := kernel.NewBarcode(validBarcode)
	require.NoError(t, err)
	schedule, err := parcel.NewSchedule(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 180)
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		barcode,
		parcel.Details{
			Sender:      "Ada",
			Recipient:   "Grace",
			Contents:    "Seeds",
			Origin:      "Starport Thames Estuary",
			Destination: "New London",
		},
		parcel.Standard,
		schedule,
		time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestCreateParcel_Created(t *testing.T) {
	f := newFixture()
	f.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateParcelCommand) bool {
		return cmd.Barcode().String() == validBarcode && cmd.DeliveryService() == parcel.Standard
	})).Return(createdParcel(t), nil)

	rec := f.do(http.MethodPost, "/parcels",
		`{"barcode":"`+validBarcode+`","sender":"Ada","recipient":"Grace","contents":"Seeds","deliveryService":"Standard"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"Created"`)
	assert.Contains(t, body, `"launchDate":"2025-10-01"`)
	assert.Contains(t, body, `"etaDays":180`)
	assert.Contains(t, body, `"estimatedArrivalDate":"2026-03-30"`)
	assert.Contains(t, body, `"history":[{"status":"Created","timestamp":"2025-09-01"}]`)
	f.create.AssertExpectations(t)
}

func TestCreateParcel_InvalidInputIsBadRequest(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPost, "/parcels", `{"barcode":"nope","deliveryService":"Overnight"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	f.create.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateParcel_DuplicateBarcode(t *testing.T) {
	f := newFixture()
	f.create.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectAlreadyExistsError("barcode", validBarcode))

	rec := f.do(http.MethodPost, "/parcels", `{"barcode":"`+validBarcode+`","deliveryService":"Express"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Parcel already exists"`)
}

func TestGetParcel_Found(t *testing.T) {
	f := newFixture()
	f.get.On("Handle", mock.Anything, mock.Anything).Return(queries.GetParcelQueryResponse{
		Barcode:              validBarcode,
		DeliveryService:      "Express",
		Status:               parcel.OnRocketToMars,
		LaunchDate:           time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
		EtaDays:              90,
		EstimatedArrivalDate: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		LastUpdated:          time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC),
		History: []queries.HistoryItem{
			{Status: parcel.Created, Timestamp: "2025-10-02"},
			{Status: parcel.OnRocketToMars, Timestamp: "2025-11-05"},
		},
	}, nil)

	rec := f.do(http.MethodGet, "/parcels/"+validBarcode, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"OnRocketToMars"`)
	assert.Contains(t, body, `"deliveryService":"Express"`)
	assert.Contains(t, body, `"estimatedArrivalDate":"2026-02-03"`)
	assert.Contains(t, body, `{"status":"OnRocketToMars","timestamp":"2025-11-05"}`)
}

func TestGetParcel_NotFound(t *testing.T) {
	f := newFixture()
	f.get.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("barcode", validBarcode))

	rec := f.do(http.MethodGet, "/parcels/"+validBarcode, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parcel with barcode: '"+validBarcode+"' not found.")
}

func TestGetParcel_MalformedBarcodeIsNotFound(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/parcels/ABC", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Parcel with barcode: 'ABC' not found.")
	f.get.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUpdateParcelStatus(t *testing.T) {
	tests := []struct {
		name        string
		handlerErr  error
		wantCode    int
		wantMessage string
	}{
		{
			name:     "accepted",
			wantCode: http.StatusOK,
		},
		{
			name:        "unknown barcode",
			handlerErr:  errs.NewObjectNotFoundError("barcode", validBarcode),
			wantCode:    http.StatusNotFound,
			wantMessage: "Parcel with barcode: '" + validBarcode + "' not found.",
		},
		{
			name:        "missing status",
			handlerErr:  errs.NewValueIsRequiredError("newStatus"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "newStatus must have a value.",
		},
		{
			name:        "rejected transition",
			handlerErr:  errs.NewTransitionRejectedError("Cannot move from Created to Delivered"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Cannot move from Created to Delivered",
		},
		{
			name:        "persistence failure",
			handlerErr:  commands.ErrParcelUpdateFailed,
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Update Failed: An error occurred while updating the parcel status.",
		},
		{
			name:        "unexpected error",
			handlerErr:  errors.New("connection reset"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Update Failed: An error occurred while updating the parcel status.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateParcelStatusCommand) bool {
				return cmd.Barcode().String() == validBarcode && cmd.NewStatus() == "delivered"
			})).Return(tt.handlerErr)

			rec := f.do(http.MethodPatch, "/parcels/"+validBarcode, `{"newStatus":"delivered"}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantMessage != "" {
				assert.Contains(t, rec.Body.String(), `"message":"`+tt.wantMessage+`"`)
			} else {
				assert.Empty(t, rec.Body.String())
			}
			f.update.AssertExpectations(t)
		})
	}
}

func TestUpdateParcelStatus_MalformedBarcodeIsNotFound(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodPatch, "/parcels/RMARS1", `{"newStatus":"Lost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	f.update.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetParcelsAwaitingTransition(t *testing.T) {
	f := newFixture()
	f.awaiting.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetParcelsAwaitingTransitionQueryResponse{
		{
			Barcode:              validBarcode,
			Status:               parcel.Created,
			LaunchDate:           time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			EstimatedArrivalDate: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
		},
	}, nil)

	rec := f.do(http.MethodGet, "/parcels/awaiting-transition", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"barcode":"`+validBarcode+`","status":"Created","launchDate":"2025-10-01","estimatedArrivalDate":"2026-03-30"}]`,
		rec.Body.String())
}

func TestGetParcelsAwaitingTransition_Failure(t *testing.T) {
	f := newFixture()
	f.awaiting.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := f.do(http.MethodGet, "/parcels/awaiting-transition", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
