package models

import "fmt"

// Client-selectable orderings of the "on this day" listing.
const (
	SortName      = "name"
	SortDeathDate = "deathDate"
	SortBirthYear = "birthYear"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// IsValidSortField checks if a string is a valid sort field constant.
// The empty string selects the default order.
func IsValidSortField(field string) bool {
	switch field {
	case "", SortName, SortDeathDate, SortBirthYear:
		return true
	default:
		return false
	}
}

// IsValidSortOrder checks if a string is a valid sort direction.
func IsValidSortOrder(order string) bool {
	switch order {
	case "", OrderAsc, OrderDesc:
		return true
	default:
		return false
	}
}

// TodaySort is the requested ordering of the "on this day" listing.
type TodaySort struct {
	Field string
	Order string
}

// ParseTodaySort validates the query parameters. An empty order defaults to ascending.
func ParseTodaySort(field, order string) (TodaySort, error) {
	if !IsValidSortField(field) {
		return TodaySort{}, fmt.Errorf("invalid sort field %q", field)
	}
	if !IsValidSortOrder(order) {
		return TodaySort{}, fmt.Errorf("invalid sort order %q", order)
	}
	if order == "" {
		order = OrderAsc
	}
	return TodaySort{Field: field, Order: order}, nil
}

// Keys translates the selection into sort keys. Without a field the listing
// shows the most recent deaths first.
func (s TodaySort) Keys() []SortKey {
	desc := s.Order == OrderDesc
	var keys []SortKey
	switch s.Field {
	case SortName:
		keys = []SortKey{{Field: FieldFamilyName, Desc: desc}, {Field: FieldGivenName, Desc: desc}}
	case SortDeathDate:
		keys = []SortKey{
			{Field: FieldDeathYear, Desc: desc},
			{Field: FieldDeathMonth, Desc: desc},
			{Field: FieldDeathDay, Desc: desc},
		}
	case SortBirthYear:
		keys = []SortKey{{Field: FieldBirthYear, Desc: desc}}
	default:
		keys = []SortKey{{Field: FieldDeathYear, Desc: true}}
	}
	return append(keys, SortKey{Field: FieldNID})
}

// ListingOrder is the order of the paginated archive listing. The default
// view sorts by full death date; search results only by year and family name.
func ListingOrder(isSearch bool) []SortKey {
	if isSearch {
		return []SortKey{
			{Field: FieldDeathYear, Desc: true},
			{Field: FieldFamilyName},
			{Field: FieldNID},
		}
	}
	return []SortKey{
		{Field: FieldDeathYear, Desc: true},
		{Field: FieldDeathMonth, Desc: true},
		{Field: FieldDeathDay, Desc: true},
		{Field: FieldFamilyName},
		{Field: FieldNID},
	}
}
