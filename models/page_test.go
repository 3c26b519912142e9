package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	assert.Equal(t, PageRequest{Page: 1, Limit: 8}, NewPageRequest(0, 0))
	assert.Equal(t, PageRequest{Page: 1, Limit: 8}, NewPageRequest(-3, -1))
	assert.Equal(t, PageRequest{Page: 3, Limit: 20}, NewPageRequest(3, 20))
	assert.Equal(t, PageRequest{Page: 2, Limit: MaxLimit}, NewPageRequest(2, 5000))
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, NewPageRequest(1, 8).Offset())
	assert.Equal(t, 16, NewPageRequest(3, 8).Offset())
}

func TestListResultHasMore(t *testing.T) {
	page := NewPageRequest(1, 2)
	assert.True(t, ListResult{Data: make([]Totenbild, 2), Total: 3}.HasMore(page))
	assert.False(t, ListResult{Data: make([]Totenbild, 1), Total: 3}.HasMore(NewPageRequest(2, 2)))
	assert.False(t, ListResult{Data: []Totenbild{}, Total: 0}.HasMore(page))
}

func TestNewPageRequestCapsHugePages(t *testing.T) {
	for _, limit := range []int{1, 8, MaxLimit} {
		page := NewPageRequest(1<<61, limit)
		assert.Equal(t, MaxPage, page.Page)
		assert.GreaterOrEqual(t, page.Offset(), 0)
	}
	assert.Equal(t, MaxPage, NewPageRequest(math.MaxInt, 8).Page)
}

func TestPageOffsetNeverNegative(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1 << 61, Limit: 8}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 0, Limit: 8}.Offset())
	assert.Equal(t, 0, PageRequest{Page: 4, Limit: 0}.Offset())
}
