package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDeathDate(t *testing.T) {
	tests := []struct {
		name string
		rec  Totenbild
		want string
	}{
		{"components", Totenbild{Sterbetag: IntPtr(3), Sterbemonat: IntPtr(7), Sterbejahr: IntPtr(1950)}, "03.07.1950"},
		{"legacy string", Totenbild{Sterbemonat: IntPtr(7), Sterbejahr: IntPtr(1950), Sterbedatum: StringPtr("Juli 1950")}, "Juli 1950"},
		{"year only", Totenbild{Sterbejahr: IntPtr(1950)}, "1950"},
		{"nothing", Totenbild{}, "—"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.FormatDeathDate())
		})
	}
}

func TestAge(t *testing.T) {
	assert.Equal(t, "80", (&Totenbild{Sterbealter: IntPtr(80), Geburtsjahr: IntPtr(1900), Sterbejahr: IntPtr(1990)}).Age())
	assert.Equal(t, "90", (&Totenbild{Geburtsjahr: IntPtr(1900), Sterbejahr: IntPtr(1990)}).Age())
	assert.Equal(t, "—", (&Totenbild{Sterbejahr: IntPtr(1990)}).Age())
}

func TestDisplayNameAndLink(t *testing.T) {
	rec := Totenbild{NID: 7, Name: StringPtr("Huber Maria"), Vorname: StringPtr("Maria"), Nachname: StringPtr("Huber")}
	assert.Equal(t, "Huber Maria", rec.DisplayName())
	assert.Equal(t, "/person/7", rec.Link())

	rec.Alias = StringPtr("huber-maria")
	assert.Equal(t, "/totenbild/huber-maria", rec.Link())

	onlyName := Totenbild{Name: StringPtr("Unbekannt")}
	assert.Equal(t, "Unbekannt", onlyName.DisplayName())
}

func TestImageURLBuilder(t *testing.T) {
	b := ImageURLBuilder{BaseURL: "https://example.org/files/", PlaceholderURL: "https://placehold.co/400x600/eee/555?text="}

	assert.Equal(t, "https://example.org/files/scan_0001.jpg", b.URL("scan_0001.jpg"))
	assert.Equal(t, "https://placehold.co/400x600/eee/555?text=dummy_1.jpg", b.URL("dummy_1.jpg"))

	records := []Totenbild{{NID: 1, Images: []TotenbildImage{{Filename: "a.jpg"}, {Filename: "dummy_b.jpg"}}}}
	b.Resolve(records)
	assert.Equal(t, "https://example.org/files/a.jpg", records[0].Images[0].URL)
	assert.Equal(t, "https://placehold.co/400x600/eee/555?text=dummy_b.jpg", records[0].Images[1].URL)
}

func TestCloneDoesNotShareImages(t *testing.T) {
	orig := Totenbild{NID: 1, Images: []TotenbildImage{{Filename: "a.jpg"}}}
	c := orig.Clone()
	c.Images[0].URL = "changed"

	assert.Empty(t, orig.Images[0].URL)
	assert.Equal(t, orig.NID, c.NID)
}

func TestFirstImageAndLandscape(t *testing.T) {
	assert.Nil(t, (&Totenbild{Images: []TotenbildImage{}}).FirstImage())

	rec := Totenbild{Images: []TotenbildImage{{Filename: "a.jpg", Width: IntPtr(800), Height: IntPtr(600)}}}
	require.NotNil(t, rec.FirstImage())
	assert.True(t, rec.FirstImage().IsLandscape())
	assert.False(t, TotenbildImage{Filename: "b.jpg"}.IsLandscape())
}

func TestTotenbildJSONKeepsLegacyFieldNames(t *testing.T) {
	rec := Totenbild{NID: 101, Nachname: StringPtr("Huber"), Sterbejahr: IntPtr(1985), Images: []TotenbildImage{}}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(101), decoded["nid"])
	assert.Equal(t, "Huber", decoded["Nachname"])
	assert.Equal(t, float64(1985), decoded["Sterbejahr"])
	assert.Nil(t, decoded["Vorname"])
	assert.Equal(t, []any{}, decoded["images"])
}
