package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"fitlead/pkg/utils"
)

type ExecResult struct {
	RowsAffected int64
}

// Gateway is the only path to the relational store. Queries use ? placeholders
// and every driver error comes back wrapped in utils.ErrStorage.
type Gateway interface {
	// FetchOne scans the first row into dest and reports whether a row existed.
	FetchOne(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error)
	FetchAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Execute(ctx context.Context, query string, args ...interface{}) (ExecResult, error)
	Ping(ctx context.Context) error
}

type gormGateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) Gateway {
	return &gormGateway{db: db}
}

// storageError wraps err in utils.ErrStorage. Raw scans bypass gorm's
// TranslateError hook, so postgres errors go through the dialector here and a
// unique violation also matches gorm.ErrDuplicatedKey.
func (g *gormGateway) storageError(err error) error {
	var pgErr *pgconn.PgError
	if translator, ok := g.db.Dialector.(gorm.ErrorTranslator); ok && errors.As(err, &pgErr) {
		if translated := translator.Translate(pgErr); translated != pgErr {
			return fmt.Errorf("%w: %w: %w", utils.ErrStorage, translated, err)
		}
	}
	return fmt.Errorf("%w: %w", utils.ErrStorage, err)
}

func (g *gormGateway) FetchOne(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	res := g.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if res.Error != nil {
		return false, g.storageError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (g *gormGateway) FetchAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	if err := g.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return g.storageError(err)
	}
	return nil
}

func (g *gormGateway) Execute(ctx context.Context, query string, args ...interface{}) (ExecResult, error) {
	res := g.db.WithContext(ctx).Exec(query, args...)
	if res.Error != nil {
		return ExecResult{}, g.storageError(res.Error)
	}
	return ExecResult{RowsAffected: res.RowsAffected}, nil
}

func (g *gormGateway) Ping(ctx context.Context) error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return g.storageError(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return g.storageError(err)
	}
	return nil
}
