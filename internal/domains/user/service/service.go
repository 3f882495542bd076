package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"transbook/config"
	"transbook/infras/otel"
	"transbook/internal/domains/user/model"
	"transbook/internal/domains/user/model/dto"
	"transbook/internal/domains/user/repository"
	"transbook/shared"
	"transbook/shared/cache"
	"transbook/shared/constant"
	gDto "transbook/shared/dto"
	"transbook/shared/failure"
)

const (
	cacheGetAllUser = "user:gets"
)

type User interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll lists every user, newest first, without the credential column.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, params, gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, failure.InternalFromString("Failed to fetch users") //nolint:wrapcheck
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}
