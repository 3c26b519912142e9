package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRecord() *Totenbild {
	return &Totenbild{
		NID:         1,
		Name:        StringPtr("Huber Maria"),
		Vorname:     StringPtr("Maria"),
		Nachname:    StringPtr("Huber"),
		Ledigname:   StringPtr("Schmidt"),
		Ort:         StringPtr("Salzburg"),
		Strasse:     StringPtr("Getreidegasse 9"),
		Geburtsjahr: IntPtr(1905),
		Sterbetag:   IntPtr(23),
		Sterbemonat: IntPtr(11),
		Sterbejahr:  IntPtr(1985),
	}
}

func TestSearchFilterMatches(t *testing.T) {
	rec := sampleRecord()
	tests := []struct {
		name   string
		filter SearchFilter
		want   bool
	}{
		{"empty filter", SearchFilter{}, true},
		{"family name substring any case", SearchFilter{Name: "HUB"}, true},
		{"maiden name", SearchFilter{Name: "schmi"}, true},
		{"given name", SearchFilter{Name: "ari"}, true},
		{"name mismatch", SearchFilter{Name: "weber"}, false},
		{"location by street", SearchFilter{Location: "getreide"}, true},
		{"location by town", SearchFilter{Location: "  salz  "}, true},
		{"location mismatch", SearchFilter{Location: "graz"}, false},
		{"birth year equal", SearchFilter{BirthYear: IntPtr(1905)}, true},
		{"birth year differs", SearchFilter{BirthYear: IntPtr(1906)}, false},
		{"death year equal", SearchFilter{DeathYear: IntPtr(1985)}, true},
		{"all criteria", SearchFilter{Name: "huber", Location: "salzburg", BirthYear: IntPtr(1905), DeathYear: IntPtr(1985)}, true},
		{"one criterion fails", SearchFilter{Name: "huber", DeathYear: IntPtr(1990)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(rec))
		})
	}
}

func TestSearchFilterMatchesNullColumns(t *testing.T) {
	rec := &Totenbild{NID: 2}
	assert.True(t, SearchFilter{}.Matches(rec))
	assert.False(t, SearchFilter{Name: "a"}.Matches(rec))
	assert.False(t, SearchFilter{BirthYear: IntPtr(1900)}.Matches(rec))
}

func TestSearchFilterIsSearch(t *testing.T) {
	assert.False(t, SearchFilter{}.IsSearch())
	assert.False(t, SearchFilter{Name: "   "}.IsSearch())
	assert.True(t, SearchFilter{Location: "Linz"}.IsSearch())
	assert.True(t, SearchFilter{DeathYear: IntPtr(1944)}.IsSearch())
}

func TestDiedOn(t *testing.T) {
	rec := sampleRecord()
	assert.True(t, rec.DiedOn(23, 11))
	assert.False(t, rec.DiedOn(11, 23))
	assert.False(t, rec.DiedOn(24, 11))
	assert.False(t, (&Totenbild{Sterbejahr: IntPtr(1900)}).DiedOn(1, 1))
}
