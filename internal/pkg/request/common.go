package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

const DefaultPageSize = 10

// PageParams binds the offset-style paging query used by list endpoints (?from=0&size=10).
type PageParams struct {
	From *int `form:"from" binding:"omitempty,min=0"`
	Size *int `form:"size" binding:"omitempty,min=1"`
}

// Page converts the bound parameters, applying defaults for missing values.
func (p PageParams) Page() Page {
	page := Page{From: 0, Size: DefaultPageSize}
	if p.From != nil {
		page.From = *p.From
	}
	if p.Size != nil {
		page.Size = *p.Size
	}
	return page
}

// Page is an offset/limit pair. Offsets are rounded down to a whole page:
// from=15,size=10 starts at 10, not 15.
type Page struct {
	From int
	Size int
}

// Index is the zero-based page number, from / size.
func (p Page) Index() int {
	if p.Size < 1 {
		return 0
	}
	return p.From / p.Size
}

// Limit is the page size, never below 1.
func (p Page) Limit() uint64 {
	if p.Size < 1 {
		return DefaultPageSize
	}
	return uint64(p.Size)
}

// Offset is the first row of the page.
func (p Page) Offset() uint64 {
	return uint64(p.Index()) * p.Limit()
}
