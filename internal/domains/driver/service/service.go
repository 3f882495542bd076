package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"transbook/config"
	"transbook/infras/otel"
	"transbook/internal/domains/driver/model"
	"transbook/internal/domains/driver/model/dto"
	"transbook/internal/domains/driver/repository"
	"transbook/shared"
	"transbook/shared/cache"
	"transbook/shared/constant"
	gDto "transbook/shared/dto"
	"transbook/shared/failure"
)

const (
	cacheGetAllDriver = "driver:gets"
)

type Driver interface {
	GetAll(ctx context.Context) ([]dto.DriverResponse, error)
}

type serviceImpl struct {
	repo  repository.Driver
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Driver, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Driver {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.DriverResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDriver, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for drivers")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get drivers")

		return res, failure.InternalFromString("Failed to fetch drivers") //nolint:wrapcheck
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save drivers to cache")
		}
	}()

	return res, nil
}
