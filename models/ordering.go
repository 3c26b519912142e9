package models

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names a sortable column. The values are the column names of the
// 'totenbilder' table so the SQL builder can use them directly.
type SortField string

const (
	FieldNID        SortField = "nid"
	FieldFamilyName SortField = "Nachname"
	FieldGivenName  SortField = "Vorname"
	FieldBirthYear  SortField = "Geburtsjahr"
	FieldDeathYear  SortField = "Sterbejahr"
	FieldDeathMonth SortField = "Sterbemonat"
	FieldDeathDay   SortField = "Sterbetag"
)

// SortKey is one component of an ORDER BY.
type SortKey struct {
	Field SortField
	Desc  bool
}

// SQL renders the key for a query against the table aliased as tableAlias.
func (k SortKey) SQL(tableAlias string) string {
	col := string(k.Field)
	if tableAlias != "" {
		col = tableAlias + "." + col
	}
	if k.Desc {
		return col + " DESC"
	}
	return col + " ASC"
}

// SortTotenbilder orders records in place by keys, mirroring the database:
// NULL sorts before any value in ascending order, text compares with German
// case-insensitive collation.
func SortTotenbilder(records []Totenbild, keys []SortKey) {
	// a collator is stateful, so each sort gets its own
	coll := collate.New(language.German, collate.IgnoreCase)
	slices.SortStableFunc(records, func(a, b Totenbild) int {
		for _, k := range keys {
			c := compareField(coll, &a, &b, k.Field)
			if c == 0 {
				continue
			}
			if k.Desc {
				return -c
			}
			return c
		}
		return 0
	})
}

func compareField(coll *collate.Collator, a, b *Totenbild, field SortField) int {
	switch field {
	case FieldNID:
		return cmp.Compare(a.NID, b.NID)
	case FieldFamilyName:
		return compareNullableString(coll, a.Nachname, b.Nachname)
	case FieldGivenName:
		return compareNullableString(coll, a.Vorname, b.Vorname)
	case FieldBirthYear:
		return compareNullableInt(a.Geburtsjahr, b.Geburtsjahr)
	case FieldDeathYear:
		return compareNullableInt(a.Sterbejahr, b.Sterbejahr)
	case FieldDeathMonth:
		return compareNullableInt(a.Sterbemonat, b.Sterbemonat)
	case FieldDeathDay:
		return compareNullableInt(a.Sterbetag, b.Sterbetag)
	default:
		return 0
	}
}

func compareNullableInt(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareNullableString(coll *collate.Collator, a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return coll.CompareString(*a, *b)
	}
}
