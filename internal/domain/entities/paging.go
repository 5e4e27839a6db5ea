package entities

import "strings"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 1000
)

// PageFilter carries the pagination hints accepted by listings.
// Page is zero based.
type PageFilter struct {
	Page     int
	PageSize int
	Order    SortOrder
}

// Normalize clamps the filter to sane bounds.
func (f PageFilter) Normalize() PageFilter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	switch SortOrder(strings.ToLower(string(f.Order))) {
	case SortDesc:
		f.Order = SortDesc
	default:
		f.Order = SortAsc
	}
	return f
}

// Page is one page of a listing plus the size of the whole collection.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"total_count"`
}

// Paginate slices an already sorted collection according to f.
func Paginate[T any](all []T, f PageFilter) Page[T] {
	f = f.Normalize()
	start := f.Page * f.PageSize
	if start > len(all) {
		start = len(all)
	}
	end := start + f.PageSize
	if end > len(all) {
		end = len(all)
	}
	data := make([]T, end-start)
	copy(data, all[start:end])
	return Page[T]{Data: data, TotalCount: len(all)}
}
