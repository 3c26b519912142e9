package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/totenbilder/models"
)

func joined(nid int64, filename string) JoinedRow {
	r := JoinedRow{Person: models.Totenbild{NID: nid, Nachname: models.StringPtr("N")}}
	if filename != "" {
		r.Filename = models.StringPtr(filename)
		r.Width = models.IntPtr(100)
		r.Height = models.IntPtr(200)
		r.Filemime = models.StringPtr("image/jpeg")
	}
	return r
}

func TestAssembleTotenbilderGroupsByFirstSeenOrder(t *testing.T) {
	rows := []JoinedRow{
		joined(5, "5a.jpg"),
		joined(2, "2a.jpg"),
		joined(5, "5b.jpg"),
		joined(9, ""),
		joined(2, "2b.jpg"),
	}

	records := AssembleTotenbilder(rows)

	require.Len(t, records, 3)
	assert.Equal(t, int64(5), records[0].NID)
	assert.Equal(t, int64(2), records[1].NID)
	assert.Equal(t, int64(9), records[2].NID)

	assert.Equal(t, []string{"5a.jpg", "5b.jpg"}, filenames(records[0]))
	assert.Equal(t, []string{"2a.jpg", "2b.jpg"}, filenames(records[1]))
	assert.NotNil(t, records[2].Images)
	assert.Empty(t, records[2].Images)
}

func TestAssembleTotenbilderImageFields(t *testing.T) {
	records := AssembleTotenbilder([]JoinedRow{joined(1, "x.jpg")})
	require.Len(t, records, 1)
	require.Len(t, records[0].Images, 1)

	img := records[0].Images[0]
	assert.Equal(t, "x.jpg", img.Filename)
	assert.Equal(t, 100, *img.Width)
	assert.Equal(t, 200, *img.Height)
	assert.Equal(t, "image/jpeg", img.Filemime)
}

func TestAssembleTotenbilderNullImageRowAddsNothing(t *testing.T) {
	rows := []JoinedRow{joined(1, "a.jpg"), joined(1, "")}
	records := AssembleTotenbilder(rows)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a.jpg"}, filenames(records[0]))
}

func TestAssembleTotenbilderKeepsDuplicateImages(t *testing.T) {
	rows := []JoinedRow{joined(1, "a.jpg"), joined(1, "a.jpg")}
	records := AssembleTotenbilder(rows)
	require.Len(t, records, 1)
	assert.Len(t, records[0].Images, 2)
}

func TestAssembleTotenbilderEmptyInput(t *testing.T) {
	records := AssembleTotenbilder(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func filenames(rec models.Totenbild) []string {
	out := make([]string, 0, len(rec.Images))
	for _, img := range rec.Images {
		out = append(out, img.Filename)
	}
	return out
}
