package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/models"
)

// SQLTotenbildRepository reads the archive from the relational store.
type SQLTotenbildRepository struct {
	db     database.Querier
	logger *zap.Logger
}

// NewSQLTotenbildRepository creates the live repository. A nil db yields a
// repository that answers every call with database.ErrNotConfigured.
func NewSQLTotenbildRepository(db database.Querier, logger *zap.Logger) *SQLTotenbildRepository {
	return &SQLTotenbildRepository{db: db, logger: logger.Named("totenbild_repository")}
}

// Search runs the two-step listing: count, select a page of nids, then load
// the full joined records for exactly those nids in page order.
func (r *SQLTotenbildRepository) Search(ctx context.Context, filter models.SearchFilter, page models.PageRequest) (models.ListResult, error) {
	if r.db == nil {
		return models.ListResult{}, database.ErrNotConfigured
	}

	total, err := database.CountTotenbilder(ctx, r.db, filter)
	if err != nil {
		return models.ListResult{}, err
	}

	order := models.ListingOrder(filter.IsSearch())
	ids, err := database.ListTotenbildIDs(ctx, r.db, filter, order, page.Limit, page.Offset())
	if err != nil {
		return models.ListResult{}, err
	}
	if len(ids) == 0 {
		return models.ListResult{Data: []models.Totenbild{}, Total: total}, nil
	}

	records, err := database.GetTotenbilderByIDs(ctx, r.db, ids)
	if err != nil {
		return models.ListResult{}, err
	}
	if len(records) != len(ids) {
		r.logger.Warn("page reload returned a different number of records",
			zap.Int("ids", len(ids)), zap.Int("records", len(records)))
	}
	return models.ListResult{Data: records, Total: total}, nil
}

// DiedOn lists everyone whose death day and month match, in any year.
func (r *SQLTotenbildRepository) DiedOn(ctx context.Context, day, month int, sort models.TodaySort) ([]models.Totenbild, error) {
	if r.db == nil {
		return nil, database.ErrNotConfigured
	}
	return database.ListTotenbilderDiedOn(ctx, r.db, day, month, sort.Keys())
}

func (r *SQLTotenbildRepository) GetByID(ctx context.Context, nid int64) (*models.Totenbild, error) {
	if r.db == nil {
		return nil, database.ErrNotConfigured
	}
	rec, err := database.GetTotenbildByID(ctx, r.db, nid)
	return single(rec, err, fmt.Sprintf("nid %d", nid))
}

func (r *SQLTotenbildRepository) GetByAlias(ctx context.Context, alias string) (*models.Totenbild, error) {
	if r.db == nil {
		return nil, database.ErrNotConfigured
	}
	rec, err := database.GetTotenbildByAlias(ctx, r.db, alias)
	return single(rec, err, fmt.Sprintf("alias %q", alias))
}

func single(rec models.Totenbild, err error, key string) (*models.Totenbild, error) {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("totenbild with %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get totenbild with %s: %w", key, err)
	}
	return &rec, nil
}
