package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"transbook/config"
	"transbook/infras/otel/mocks"
	userMocks "transbook/internal/domains/user/mocks"
	"transbook/internal/domains/user/model"
	"transbook/internal/domains/user/model/dto"
	"transbook/internal/domains/user/service"
	cacheMocks "transbook/shared/cache/mocks"
	"transbook/shared/failure"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestUserService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to the store", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.User{
				{ID: 1, Name: "Jane Roe", Email: "jane@example.com", Password: "Secret123"},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Jane Roe", res[0].Name)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		svc, _, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, _ := value.(*[]dto.UserResponse)
				*res = []dto.UserResponse{{ID: 1, Name: "Cached User"}}

				return nil
			})

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Cached User", res[0].Name)
	})

	t.Run("store failure surfaces a generic message", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.EqualError(t, err, "Failed to fetch users")
	})
}
