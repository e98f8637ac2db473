package domain

// PaginationParams carries page/limit values from the HTTP layer to the repo
// layer for the contact log listing. Page is 1-indexed. Limit is capped at
// 100 by NewPaginationParams; a busy WFD log runs to a few hundred QSOs, so
// the cap keeps single pages bounded without hiding any of the log.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of contacts to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to the defaults the log view uses (page=1, limit=20).
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
