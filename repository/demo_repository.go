package repository

import (
	"context"
	"fmt"

	"github.com/camden-git/totenbilder/models"
)

// DemoTotenbildRepository serves a fixed in-memory dataset through the same
// filter, ordering and pagination rules as the SQL repository.
type DemoTotenbildRepository struct {
	records []models.Totenbild
}

// NewDemoTotenbildRepository serves the built-in sample records.
func NewDemoTotenbildRepository() *DemoTotenbildRepository {
	return NewDemoTotenbildRepositoryWith(demoTotenbilder)
}

// NewDemoTotenbildRepositoryWith serves the given records; they are copied.
func NewDemoTotenbildRepositoryWith(records []models.Totenbild) *DemoTotenbildRepository {
	return &DemoTotenbildRepository{records: cloneAll(records)}
}

func (r *DemoTotenbildRepository) Search(_ context.Context, filter models.SearchFilter, page models.PageRequest) (models.ListResult, error) {
	matched := make([]models.Totenbild, 0, len(r.records))
	for i := range r.records {
		if filter.Matches(&r.records[i]) {
			matched = append(matched, r.records[i].Clone())
		}
	}
	models.SortTotenbilder(matched, models.ListingOrder(filter.IsSearch()))

	total := len(matched)
	start := min(max(page.Offset(), 0), total)
	end := min(start+page.Limit, total)
	return models.ListResult{Data: matched[start:end], Total: total}, nil
}

func (r *DemoTotenbildRepository) DiedOn(_ context.Context, day, month int, sort models.TodaySort) ([]models.Totenbild, error) {
	matched := make([]models.Totenbild, 0)
	for i := range r.records {
		if r.records[i].DiedOn(day, month) {
			matched = append(matched, r.records[i].Clone())
		}
	}
	models.SortTotenbilder(matched, sort.Keys())
	return matched, nil
}

func (r *DemoTotenbildRepository) GetByID(_ context.Context, nid int64) (*models.Totenbild, error) {
	for i := range r.records {
		if r.records[i].NID == nid {
			rec := r.records[i].Clone()
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("demo totenbild with nid %d: %w", nid, ErrNotFound)
}

func (r *DemoTotenbildRepository) GetByAlias(_ context.Context, alias string) (*models.Totenbild, error) {
	for i := range r.records {
		if a := r.records[i].Alias; a != nil && *a == alias {
			rec := r.records[i].Clone()
			return &rec, nil
		}
	}
	return nil, fmt.Errorf("demo totenbild with alias %q: %w", alias, ErrNotFound)
}

func cloneAll(records []models.Totenbild) []models.Totenbild {
	out := make([]models.Totenbild, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
