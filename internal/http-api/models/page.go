package models

import "strings"

// Sort tokens accepted from callers. Anything outside this set falls back to
// the default when building an order clause.
const (
	SortCreatedAt  = "createdAt"
	SortRating     = "rating"
	SortLikes      = "likes"
	SortAuthorName = "authorName"
)

const (
	DefaultPage      = 0
	DefaultSize      = 10
	DefaultSort      = SortCreatedAt
	DefaultDirection = "DESC"
)

// sortColumns is the allow-list mapping sort tokens to column references.
// SortLikes is absent on purpose: like-count ordering needs its own query
// (see CommentRepository.GetAllSortedByLikes), so the generic clause treats
// it like any unknown token.
var sortColumns = map[string]string{
	SortCreatedAt:  "created_at",
	SortRating:     "rating",
	SortAuthorName: "author_name",
}

// Pageable is an immutable page request: zero-based page index, page size,
// sort token and direction. Invalid inputs are substituted at construction,
// so a Pageable in hand is always safe to execute.
type Pageable struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

func NewPageable(page, size int, sortBy, direction string) Pageable {
	if page < 0 {
		page = DefaultPage
	}
	if size <= 0 {
		size = DefaultSize
	}
	if sortBy == "" {
		sortBy = DefaultSort
	}
	dir := strings.ToUpper(strings.TrimSpace(direction))
	if dir != "ASC" && dir != "DESC" {
		dir = DefaultDirection
	}
	return Pageable{Page: page, Size: size, SortBy: sortBy, Direction: dir}
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}

// OrderClause composes an ORDER BY expression from the validated direction
// and the allow-listed column for the sort token. Tokens outside the
// allow-list map to the default column; caller input never reaches the SQL
// text itself.
func (p Pageable) OrderClause() string {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = sortColumns[DefaultSort]
	}
	return col + " " + p.Direction
}

// Page is one slice of a result set plus the total count of the matching
// rows. The total is queried independently from the content, so the two can
// disagree briefly under concurrent writes; that read skew is tolerated.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	HasNext       bool  `json:"has_next"`
	HasPrevious   bool  `json:"has_previous"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int(total / int64(size))
		if total%int64(size) != 0 {
			totalPages++
		}
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       page < totalPages-1,
		HasPrevious:   page > 0,
	}
}
