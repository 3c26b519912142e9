package repository

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/camden-git/totenbilder/database"
	"github.com/camden-git/totenbilder/models"
)

var demoFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "totenbilder_demo_fallbacks_total",
	Help: "Requests answered from the built-in demo dataset.",
}, []string{"operation"})

// FallbackTotenbildRepository backs the public HTML pages. Listings switch to
// the demo dataset only when no database is configured; single-record lookups
// try the demo dataset after any failure so a person page survives an
// unavailable database.
type FallbackTotenbildRepository struct {
	Primary TotenbildRepository
	Demo    TotenbildRepository
	Logger  *zap.Logger
}

// Search reports whether the demo dataset answered so pages can show a notice.
// Any primary error other than database.ErrNotConfigured is returned as is.
func (f *FallbackTotenbildRepository) Search(ctx context.Context, filter models.SearchFilter, page models.PageRequest) (models.ListResult, bool, error) {
	res, err := f.Primary.Search(ctx, filter, page)
	if !errors.Is(err, database.ErrNotConfigured) {
		return res, false, err
	}
	demoFallbacks.WithLabelValues("search").Inc()
	res, err = f.Demo.Search(ctx, filter, page)
	return res, true, err
}

// DiedOn mirrors Search for the "on this day" listing.
func (f *FallbackTotenbildRepository) DiedOn(ctx context.Context, day, month int, sort models.TodaySort) ([]models.Totenbild, bool, error) {
	recs, err := f.Primary.DiedOn(ctx, day, month, sort)
	if !errors.Is(err, database.ErrNotConfigured) {
		return recs, false, err
	}
	demoFallbacks.WithLabelValues("today").Inc()
	recs, err = f.Demo.DiedOn(ctx, day, month, sort)
	return recs, true, err
}

func (f *FallbackTotenbildRepository) GetByID(ctx context.Context, nid int64) (*models.Totenbild, error) {
	rec, err := f.Primary.GetByID(ctx, nid)
	if err == nil {
		return rec, nil
	}
	f.logLookupFailure(err, zap.Int64("nid", nid))
	demoFallbacks.WithLabelValues("get_by_id").Inc()
	return f.Demo.GetByID(ctx, nid)
}

func (f *FallbackTotenbildRepository) GetByAlias(ctx context.Context, alias string) (*models.Totenbild, error) {
	rec, err := f.Primary.GetByAlias(ctx, alias)
	if err == nil {
		return rec, nil
	}
	f.logLookupFailure(err, zap.String("alias", alias))
	demoFallbacks.WithLabelValues("get_by_alias").Inc()
	return f.Demo.GetByAlias(ctx, alias)
}

func (f *FallbackTotenbildRepository) logLookupFailure(err error, key zap.Field) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, database.ErrNotConfigured) {
		return
	}
	f.Logger.Error("error fetching totenbild, trying demo dataset", key, zap.Error(err))
}
