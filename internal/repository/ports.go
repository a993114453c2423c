package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTables(tbl ...any) error
	Seed(ctx context.Context, records any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	UpdateWhere(ctx context.Context, model any, fields map[string]any, query string, args ...any) (int64, error)
}
