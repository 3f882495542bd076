package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"transbook/config"
	"transbook/infras/otel/mocks"
	vehicleMocks "transbook/internal/domains/vehicle/mocks"
	"transbook/internal/domains/vehicle/model"
	"transbook/internal/domains/vehicle/model/dto"
	"transbook/internal/domains/vehicle/service"
	cacheMocks "transbook/shared/cache/mocks"
	"transbook/shared/failure"
)

func newVehicleService(t *testing.T) (service.Vehicle, *vehicleMocks.MockVehicle, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := vehicleMocks.NewMockVehicle(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func boolPtr(b bool) *bool {
	return &b
}

func TestVehicleService_Create(t *testing.T) {
	tests := []struct {
		name            string
		req             dto.CreateVehicleRequest
		wantIsAvailable bool
	}{
		{
			name: "availability defaults to true when omitted",
			req: dto.CreateVehicleRequest{
				Name:        "City Bus 7",
				VehicleType: "bus",
				Capacity:    40,
				PricePerKM:  2.5,
			},
			wantIsAvailable: true,
		},
		{
			name: "explicit false availability is preserved",
			req: dto.CreateVehicleRequest{
				Name:        "Minivan 3",
				VehicleType: "van",
				Capacity:    7,
				PricePerKM:  1.2,
				IsAvailable: boolPtr(false),
			},
			wantIsAvailable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newVehicleService(t)

			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, vehicle model.Vehicle) (int64, error) {
					assert.Equal(t, tt.wantIsAvailable, vehicle.IsAvailable)

					return 3, nil
				})
			mockCache.EXPECT().
				Clear(gomock.Any(), gomock.Any()).
				Return(nil).
				AnyTimes()

			res, err := svc.Create(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, "Vehicle created successfully", res.Message)
			assert.Equal(t, int64(3), res.VehicleID)
		})
	}
}

func TestVehicleService_UpdateAvailability(t *testing.T) {
	svc, mockRepo, mockCache := newVehicleService(t)

	mockRepo.EXPECT().
		Update(gomock.Any(), map[string]any{model.FieldIsAvailable: false}, gomock.Any()).
		Return(nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.UpdateAvailability(context.Background(), dto.UpdateVehicleRequest{IsAvailable: boolPtr(false)}, "3")

	assert.NoError(t, err)
}

func TestVehicleService_GetAll(t *testing.T) {
	t.Run("cache miss falls through to the store", func(t *testing.T) {
		svc, mockRepo, mockCache := newVehicleService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Vehicle{{ID: 1, Name: "City Bus 7"}}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "City Bus 7", res[0].Name)
	})

	t.Run("store failure surfaces a generic message", func(t *testing.T) {
		svc, mockRepo, mockCache := newVehicleService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("pq: connection refused"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
		assert.EqualError(t, err, "Failed to fetch vehicles")
	})
}

func TestVehicleService_Delete(t *testing.T) {
	svc, mockRepo, mockCache := newVehicleService(t)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.Delete(context.Background(), "3")

	assert.NoError(t, err)
}
