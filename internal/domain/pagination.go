package domain

import "strconv"

// Pagination bounds.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest selects one page of a listing.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest reads the raw page and limit query values. Empty values
// fall back to the defaults; anything non-numeric or out of range fails.
func ParsePageRequest(rawPage, rawLimit string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Limit: DefaultPageSize}
	var errs ValidationErrors

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 1 {
			errs = append(errs, NewValidationError("page", "must be a positive integer", nil))
		} else {
			req.Page = page
		}
	}

	if rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 1 || limit > MaxPageSize {
			errs = append(errs, NewValidationError("limit", "must be an integer between 1 and 100", nil))
		} else {
			req.Limit = limit
		}
	}

	if err := errs.errOrNil(); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

// Offset is the number of rows to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination describes where a page sits within the full listing.
type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// NewPagination computes the page count for total items.
func NewPagination(req PageRequest, total int64) Pagination {
	var pages int64
	if req.Limit > 0 {
		pages = (total + int64(req.Limit) - 1) / int64(req.Limit)
	}
	return Pagination{
		TotalItems:  total,
		TotalPages:  pages,
		CurrentPage: req.Page,
		PageSize:    req.Limit,
	}
}

// Page is one page of items plus its position.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
