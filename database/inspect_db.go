package database

import (
	"context"
	"fmt"

	"github.com/camden-git/totenbilder/models"
)

// PersonSample is the short form of a person used by the inspect-db command.
type PersonSample struct {
	NID      int64   `json:"nid"`
	Nachname *string `json:"Nachname"`
	Name     *string `json:"Name"`
}

// JoinSample is one raw row of the homepage join, before assembly.
type JoinSample struct {
	NID        int64   `json:"nid"`
	Name       *string `json:"Name"`
	Sterbejahr *int    `json:"Sterbejahr"`
	Filename   *string `json:"filename"`
}

// SampleNewestTotenbilder returns the n persons with the highest nid.
func SampleNewestTotenbilder(ctx context.Context, db Querier, n int) ([]PersonSample, error) {
	sqlStr, args, err := psql.Select("nid", "Nachname", "Name").
		From("totenbilder").
		OrderBy("nid DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for SampleNewestTotenbilder: %w", err)
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute SampleNewestTotenbilder query: %w", err)
	}
	defer rows.Close()

	samples := []PersonSample{}
	for rows.Next() {
		var s PersonSample
		if err := rows.Scan(&s.NID, &s.Nachname, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan person sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// ListImagesForTotenbild returns the stored image rows of one person in delta order.
func ListImagesForTotenbild(ctx context.Context, db Querier, nid int64) ([]models.TotenbildImage, error) {
	sqlStr, args, err := psql.Select("filename", "width", "height", "filemime").
		From("totenbilder_bilder").
		Where("nid = ?", nid).
		OrderBy("delta ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListImagesForTotenbild: %w", err)
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListImagesForTotenbild query: %w", err)
	}
	defer rows.Close()

	images := []models.TotenbildImage{}
	for rows.Next() {
		var img models.TotenbildImage
		var mime *string
		if err := rows.Scan(&img.Filename, &img.Width, &img.Height, &mime); err != nil {
			return nil, fmt.Errorf("failed to scan image row: %w", err)
		}
		if mime != nil {
			img.Filemime = *mime
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// SampleListingJoin returns the first n raw rows of the default listing join,
// which shows how persons multiply across their images.
func SampleListingJoin(ctx context.Context, db Querier, n int) ([]JoinSample, error) {
	sqlStr, args, err := psql.Select("a.nid", "a.Name", "a.Sterbejahr", "b.filename").
		From(totenbilderTable).
		LeftJoin(imagesJoin).
		OrderBy(orderClauses(models.ListingOrder(false))...).
		OrderBy("b.delta ASC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for SampleListingJoin: %w", err)
	}
	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute SampleListingJoin query: %w", err)
	}
	defer rows.Close()

	samples := []JoinSample{}
	for rows.Next() {
		var s JoinSample
		if err := rows.Scan(&s.NID, &s.Name, &s.Sterbejahr, &s.Filename); err != nil {
			return nil, fmt.Errorf("failed to scan join sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}
