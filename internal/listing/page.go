package listing

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// DefaultPageSize is the number of rows every listing endpoint returns.
const DefaultPageSize = 10

var ErrInvalidPage = errors.New("page must be a positive integer")

// Page is a 1-based page number with its size.
type Page struct {
	Number int
	Size   int
}

// ParsePage reads a raw page parameter. Blank means the first page. Numbers
// too large for an offset are clamped to MaxPage, which is still past the end.
func ParsePage(raw string, size int) (Page, error) {
	if size <= 0 {
		size = DefaultPageSize
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Page{Number: 1, Size: size}, nil
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		err = nil
	}
	if err != nil || n < 1 {
		return Page{}, ErrInvalidPage
	}
	if max := MaxPage(size); n > max {
		n = max
	}
	return Page{Number: n, Size: size}, nil
}

// MaxPage is the highest page number whose offset fits in an int.
func MaxPage(size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	return math.MaxInt / size
}

func (p Page) Limit() int {
	return p.Size
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	if p.Number > MaxPage(p.Size) {
		return (MaxPage(p.Size) - 1) * p.Size
	}
	return (p.Number - 1) * p.Size
}

// Pagination is the metadata block returned next to every listed page.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination derives the page count from the true total, so a page past
// the end still reports accurate metadata.
func NewPagination(total int64, page Page) Pagination {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return Pagination{
		Total:      total,
		Page:       page.Number,
		Limit:      page.Size,
		TotalPages: totalPages,
	}
}
