package models

import "strings"

// SearchFilter holds the optional criteria of the archive listing. Empty
// strings and nil years mean "not filtered"; present criteria combine with AND.
type SearchFilter struct {
	Name      string
	Location  string
	BirthYear *int
	DeathYear *int
}

// Normalized trims the free-text criteria.
func (f SearchFilter) Normalized() SearchFilter {
	f.Name = strings.TrimSpace(f.Name)
	f.Location = strings.TrimSpace(f.Location)
	return f
}

// IsSearch reports whether any criterion is set. The default listing and
// search listings are ordered differently.
func (f SearchFilter) IsSearch() bool {
	f = f.Normalized()
	return f.Name != "" || f.Location != "" || f.BirthYear != nil || f.DeathYear != nil
}

// NameColumns are matched by the name fragment.
var NameColumns = []string{"Nachname", "Vorname", "Ledigname", "Name"}

// LocationColumns are matched by the location fragment.
var LocationColumns = []string{"Ort", "Strasse"}

// Matches applies the filter to an in-memory record with the same semantics
// the SQL listing uses: case-insensitive substring for text, equality for years.
func (f SearchFilter) Matches(t *Totenbild) bool {
	f = f.Normalized()
	if f.Name != "" && !containsFold(f.Name, t.Nachname, t.Vorname, t.Ledigname, t.Name) {
		return false
	}
	if f.Location != "" && !containsFold(f.Location, t.Ort, t.Strasse) {
		return false
	}
	if f.BirthYear != nil && (t.Geburtsjahr == nil || *t.Geburtsjahr != *f.BirthYear) {
		return false
	}
	if f.DeathYear != nil && (t.Sterbejahr == nil || *t.Sterbejahr != *f.DeathYear) {
		return false
	}
	return true
}

// DiedOn reports whether the record's death day and month equal the given pair.
func (t *Totenbild) DiedOn(day, month int) bool {
	return t.Sterbetag != nil && t.Sterbemonat != nil && *t.Sterbetag == day && *t.Sterbemonat == month
}

func containsFold(needle string, fields ...*string) bool {
	needle = strings.ToLower(needle)
	for _, f := range fields {
		if f != nil && strings.Contains(strings.ToLower(*f), needle) {
			return true
		}
	}
	return false
}
