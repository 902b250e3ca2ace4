package service

import (
	"context"
	"fmt"
	"rimbest/config"
	"rimbest/infras/otel"
	"rimbest/internal/domains/flight/model"
	"rimbest/internal/domains/flight/model/dto"
	"rimbest/internal/domains/flight/repository"
	"rimbest/shared"
	"rimbest/shared/cache"
	"rimbest/shared/constant"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight     = "flight:get"
	cacheGetAllFlight  = "flight:gets"
	cacheGetAllAirline = "airline:gets"
)

type Flight interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	Get(ctx context.Context, id int64) (dto.FlightResponse, error)
	GetAirlines(ctx context.Context) (dto.GetAirlinesResponse, error)
}

type serviceImpl struct {
	repo  repository.Flight
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Flight {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Search filters, sorts and pages the whole catalog. The catalog is small
// and the remote API has no server side paging.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	flights, err := s.catalog(ctx)
	if err != nil {
		return res, err
	}

	criteria := req.ToCriteria()

	matched := make([]model.Flight, 0, len(flights))
	for _, flight := range flights {
		if criteria.Match(flight) {
			matched = append(matched, flight)
		}
	}

	slices.SortStableFunc(matched, func(a, b model.Flight) int {
		switch {
		case criteria.Less(a, b):
			return -1
		case criteria.Less(b, a):
			return 1
		default:
			return 0
		}
	})

	scope.SetAttribute("flight.matched", len(matched))

	res.FromModels(shared.Paginate(matched, req.Page, req.Limit), len(matched), req.QueryParams)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetFlight, strconv.FormatInt(id, 10))

	var flight model.Flight

	if err = s.cache.Get(ctx, cacheKey, &flight); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for flight")
		res.FromModel(flight)

		return res, nil
	}

	flight, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("flightId", id).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if err := s.cache.Save(ctx, cacheKey, flight, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save flight to cache")
	}

	res.FromModel(flight)

	return res, nil
}

func (s *serviceImpl) GetAirlines(ctx context.Context) (res dto.GetAirlinesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAirlines")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var airlines []model.Airline

	if err = s.cache.Get(ctx, cacheGetAllAirline, &airlines); err == nil {
		log.Debug().Str("cacheKey", cacheGetAllAirline).Msg("cache hit for airlines")
		res.FromModels(airlines)

		return res, nil
	}

	airlines, err = s.repo.GetAirlines(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get airlines")

		return res, fmt.Errorf("failed to get airlines: %w", err)
	}

	if err := s.cache.Save(ctx, cacheGetAllAirline, airlines, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save airlines to cache")
	}

	res.FromModels(airlines)

	return res, nil
}

func (s *serviceImpl) catalog(ctx context.Context) ([]model.Flight, error) {
	var flights []model.Flight

	if err := s.cache.Get(ctx, cacheGetAllFlight, &flights); err == nil {
		log.Debug().Str("cacheKey", cacheGetAllFlight).Msg("cache hit for flights")

		return flights, nil
	}

	flights, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get flights")

		return nil, fmt.Errorf("failed to get flights: %w", err)
	}

	if err := s.cache.Save(ctx, cacheGetAllFlight, flights, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save flights to cache")
	}

	return flights, nil
}
