package query

import "github.com/erazemk/lostfound/internal/model"

// Page is the paginated listing envelope.
type Page struct {
	Items       []model.Item `json:"items"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	Total       int          `json:"total"`
}

// NewPage wraps one page of items matching l out of total.
func NewPage(items []model.Item, total int, l Listing) Page {
	if items == nil {
		items = []model.Item{}
	}
	return Page{
		Items:       items,
		TotalPages:  TotalPages(total, l.Limit),
		CurrentPage: l.Page,
		Total:       total,
	}
}

// EmptyPage is returned in place of a listing that could not be loaded.
func EmptyPage(l Listing) Page {
	return NewPage(nil, 0, l)
}

// TotalPages is ceil(total/limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
