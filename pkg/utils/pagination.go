package utils

import (
	"context"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Pagination is an offset window over the visible list.
type Pagination struct {
	Offset int `json:"offset" validate:"gte=0"`
	Limit  int `json:"limit" validate:"gte=1,lte=100"`
}

const (
	DefaultLimit = 30
	MaxLimit     = 100
)

// SetLimit parses the limit query value. Empty means DefaultLimit; values
// above MaxLimit are clamped.
func (p *Pagination) SetLimit(queryLimit string) error {
	if queryLimit == "" {
		p.Limit = DefaultLimit
		return nil
	}
	limit, err := strconv.Atoi(queryLimit)
	if err != nil {
		return fmt.Errorf("invalid limit: %w", err)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	p.Limit = limit
	return nil
}

func (p *Pagination) SetOffset(queryOffset string) error {
	if queryOffset == "" {
		p.Offset = 0
		return nil
	}
	offset, err := strconv.Atoi(queryOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}
	p.Offset = offset
	return nil
}

func (p *Pagination) GetOffset() int {
	return p.Offset
}

func (p *Pagination) GetLimit() int {
	return p.Limit
}

func (p *Pagination) GetQueryString() string {
	return fmt.Sprintf("offset=%v&limit=%v", p.Offset, p.Limit)
}

// Window clamps the pagination to a list of total entries and returns the
// half-open range [start, end).
func (p *Pagination) Window(total int) (start, end int) {
	start = min(p.Offset, total)
	end = min(start+p.Limit, total)
	return start, end
}

func GetPaginationFromCtx(c echo.Context) (*Pagination, error) {
	p := &Pagination{}
	if err := p.SetLimit(c.QueryParam("limit")); err != nil {
		return nil, err
	}
	if err := p.SetOffset(c.QueryParam("offset")); err != nil {
		return nil, err
	}
	if err := ValidateStruct(c.Request().Context(), p); err != nil {
		return nil, fmt.Errorf("invalid pagination: %w", err)
	}
	return p, nil
}

// NewPagination builds a validated pagination outside of a request.
func NewPagination(ctx context.Context, offset, limit int) (*Pagination, error) {
	p := &Pagination{Offset: offset, Limit: limit}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if err := ValidateStruct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func GetHasMore(offset, totalCount, limit int) bool {
	return offset+limit < totalCount
}
