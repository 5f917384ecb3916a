package util

import (
	"fmt"
	"strconv"
)

const (
	DefaultPerPage = 25
	MaxPerPage     = 100
)

// ListFilter contains common filtering/pagination options for list endpoints
type ListFilter struct {
	// Filters parsed from query parameter
	Filters []QueryFilter
	// Pagination
	Page    int
	PerPage int
}

// ParseListFilter reads the query, page and per_page parameters
func ParseListFilter(query, page, perPage string, allowedFields []string) (*ListFilter, error) {
	filters, err := ParseQueryString(query)
	if err != nil {
		return nil, err
	}
	if err := ValidateFilterFields(filters, allowedFields); err != nil {
		return nil, err
	}

	lf := &ListFilter{Filters: filters, Page: 1, PerPage: DefaultPerPage}

	if page != "" {
		lf.Page, err = strconv.Atoi(page)
		if err != nil || lf.Page < 1 {
			return nil, fmt.Errorf("invalid page: %s", page)
		}
	}

	if perPage != "" {
		lf.PerPage, err = strconv.Atoi(perPage)
		if err != nil || lf.PerPage < 1 || lf.PerPage > MaxPerPage {
			return nil, fmt.Errorf("invalid per_page: %s (expected 1-%d)", perPage, MaxPerPage)
		}
	}

	return lf, nil
}

// Bounds returns the slice bounds of the requested page over total items and
// the total page count.
func (lf *ListFilter) Bounds(total int) (start, end, totalPages int) {
	totalPages = (total + lf.PerPage - 1) / lf.PerPage
	if totalPages == 0 {
		totalPages = 1
	}

	// Pages past the end start at total; checked before multiplying so huge
	// page numbers cannot overflow.
	if lf.Page-1 > total/lf.PerPage {
		start = total
	} else {
		start = min((lf.Page-1)*lf.PerPage, total)
	}
	end = start + lf.PerPage
	if end > total {
		end = total
	}
	return start, end, totalPages
}
