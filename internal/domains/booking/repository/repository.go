package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"rimbest/infras/otel"
	"rimbest/infras/restapi"
	"rimbest/internal/domains/booking/model"
	"rimbest/shared/constant"
	"strconv"
)

const pathBookings = "/bookings"

// Booking reads and writes bookings on the remote API on behalf of the
// token's owner.
type Booking interface {
	GetAll(ctx context.Context, token string) ([]model.Booking, error)
	Get(ctx context.Context, token string, id int64) (model.Booking, error)
	Create(ctx context.Context, token string, req model.BookingRequest) (model.Booking, error)
	Cancel(ctx context.Context, token string, id int64) error
}

type repositoryImpl struct {
	client restapi.Client
	otel   otel.Otel
}

func New(client restapi.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func bookingPath(id int64) string {
	return pathBookings + "/" + strconv.FormatInt(id, 10)
}

func (r *repositoryImpl) GetAll(ctx context.Context, token string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: pathBookings, Token: token}, &res); err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, token string, id int64) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodGet, Path: bookingPath(id), Token: token}, &res); err != nil {
		return res, fmt.Errorf("failed to get booking %d: %w", id, err)
	}

	return res, nil
}

func (r *repositoryImpl) Create(ctx context.Context, token string, req model.BookingRequest) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("flight.id", req.FlightID)

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodPost, Path: pathBookings, Token: token, Body: req}, &res); err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Cancel(ctx context.Context, token string, id int64) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CancelBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := bookingPath(id) + "/cancel"

	if err = r.client.Do(ctx, restapi.Request{Method: http.MethodPut, Path: path, Token: token}, nil); err != nil {
		return fmt.Errorf("failed to cancel booking %d: %w", id, err)
	}

	return nil
}
