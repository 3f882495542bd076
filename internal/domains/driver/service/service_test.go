package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"transbook/config"
	"transbook/infras/otel/mocks"
	driverMocks "transbook/internal/domains/driver/mocks"
	"transbook/internal/domains/driver/model"
	"transbook/internal/domains/driver/service"
	cacheMocks "transbook/shared/cache/mocks"
	"transbook/shared/failure"
)

func TestDriverService_GetAll(t *testing.T) {
	newService := func(t *testing.T) (service.Driver, *driverMocks.MockDriver, *cacheMocks.MockRedisCache) {
		t.Helper()

		ctrl := gomock.NewController(t)

		mockRepo := driverMocks.NewMockDriver(ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		cfg := &config.Config{}
		cfg.Cache.TTL = 60

		return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
	}

	t.Run("lists drivers with availability and rating", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Driver{
				{ID: 1, Name: "Max Driver", LicenseNumber: "B123", IsAvailable: true, Rating: 4.8},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Max Driver", res[0].Name)
		assert.InDelta(t, 4.8, res[0].Rating, 0.001)
	})

	t.Run("store failure surfaces a generic message", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.EqualError(t, err, "Failed to fetch drivers")
	})
}
