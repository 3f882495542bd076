package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"transbook/config"
	"transbook/infras/otel"
	"transbook/internal/domains/vehicle/model"
	"transbook/internal/domains/vehicle/model/dto"
	"transbook/internal/domains/vehicle/repository"
	"transbook/shared"
	"transbook/shared/cache"
	"transbook/shared/constant"
	gDto "transbook/shared/dto"
	"transbook/shared/failure"
)

const (
	cacheGetAllVehicle = "vehicle:gets"
)

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (dto.CreateVehicleResponse, error)
	GetAll(ctx context.Context) ([]dto.VehicleResponse, error)
	UpdateAvailability(ctx context.Context, req dto.UpdateVehicleRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Vehicle
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vehicle, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Vehicle {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (res dto.CreateVehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create vehicle")

		return res, failure.InternalFromString("Failed to create vehicle") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
	}()

	res.Message = "Vehicle created successfully"
	res.VehicleID = id

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.VehicleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllVehicle, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for vehicles")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicles")

		return res, failure.InternalFromString("Failed to fetch vehicles") //nolint:wrapcheck
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save vehicles to cache")
		}
	}()

	return res, nil
}

// UpdateAvailability mutates only the availability flag; an unknown id
// updates zero rows and is still success.
func (s *serviceImpl) UpdateAvailability(ctx context.Context, req dto.UpdateVehicleRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, map[string]any{model.FieldIsAvailable: *req.IsAvailable}, filter); err != nil {
		log.Error().Err(err).Msg("failed to update vehicle")

		return failure.InternalFromString("Failed to update vehicle") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete vehicle")

		return failure.InternalFromString("Failed to delete vehicle") //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
	}()

	return nil
}
