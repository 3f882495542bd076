package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"transbook/infras/otel"
	"transbook/infras/postgres"
	"transbook/internal/domains/driver/model"
	gDto "transbook/shared/dto"
	gRepo "transbook/shared/repository"
)

type Driver interface {
	Insert(ctx context.Context, model model.Driver) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Driver, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Driver, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Driver]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Driver {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Driver](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
