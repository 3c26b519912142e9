package database

import (
	"database/sql"
	"fmt"

	"github.com/camden-git/totenbilder/models"
)

// JoinedRow is one row of totenbilder LEFT JOIN totenbilder_bilder: all person
// columns plus the image columns, which are NULL for persons without images.
type JoinedRow struct {
	Person   models.Totenbild
	Filename *string
	Width    *int
	Height   *int
	Filemime *string
}

// AssembleTotenbilder folds joined rows into one record per nid. Records come
// out in the order their nid was first seen, images in row order. Rows with no
// filename add no image, so a person without scans gets an empty list.
func AssembleTotenbilder(rows []JoinedRow) []models.Totenbild {
	records := make([]models.Totenbild, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		pos, seen := index[row.Person.NID]
		if !seen {
			rec := row.Person
			rec.Images = []models.TotenbildImage{}
			records = append(records, rec)
			pos = len(records) - 1
			index[row.Person.NID] = pos
		}

		if row.Filename == nil || *row.Filename == "" {
			continue
		}
		img := models.TotenbildImage{
			Filename: *row.Filename,
			Width:    row.Width,
			Height:   row.Height,
		}
		if row.Filemime != nil {
			img.Filemime = *row.Filemime
		}
		records[pos].Images = append(records[pos].Images, img)
	}
	return records
}

// personColumns must stay in sync with scanJoinedRow.
var personColumns = []string{
	"a.nid", "a.alias", "a.Name", "a.Vorname", "a.Nachname", "a.Ledigname",
	"a.Ort", "a.Strasse", "a.Geschlecht", "a.Bekenntnis",
	"a.Beruf1", "a.Beruf2", "a.Geburtsjahr",
	"a.Sterbedatum", "a.Sterbetag", "a.Sterbemonat", "a.Sterbejahr", "a.Sterbealter",
	"a.Bemerkung",
}

var imageColumns = []string{"b.filename", "b.width", "b.height", "b.filemime"}

func joinedColumns() []string {
	cols := make([]string, 0, len(personColumns)+len(imageColumns))
	cols = append(cols, personColumns...)
	return append(cols, imageColumns...)
}

func scanJoinedRow(rows *sql.Rows) (JoinedRow, error) {
	var r JoinedRow
	p := &r.Person
	err := rows.Scan(
		&p.NID, &p.Alias, &p.Name, &p.Vorname, &p.Nachname, &p.Ledigname,
		&p.Ort, &p.Strasse, &p.Geschlecht, &p.Bekenntnis,
		&p.Beruf1, &p.Beruf2, &p.Geburtsjahr,
		&p.Sterbedatum, &p.Sterbetag, &p.Sterbemonat, &p.Sterbejahr, &p.Sterbealter,
		&p.Bemerkung,
		&r.Filename, &r.Width, &r.Height, &r.Filemime,
	)
	return r, err
}

func collectJoinedRows(rows *sql.Rows) ([]JoinedRow, error) {
	defer rows.Close()
	var joined []JoinedRow
	for rows.Next() {
		r, err := scanJoinedRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan totenbild row: %w", err)
		}
		joined = append(joined, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totenbild rows: %w", err)
	}
	return joined, nil
}
