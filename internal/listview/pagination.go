package listview

// MaxVisiblePages is the widest page-number window the control shows.
const MaxVisiblePages = 5

// PageSizes are the options of the page-size selector.
var PageSizes = []int{10, 20, 50}

// Pagination is the state of the numbered pagination control.
type Pagination struct {
	PageIndex    int   `json:"pageIndex"`
	PageSize     int   `json:"pageSize"`
	TotalItems   int   `json:"totalItems"`
	TotalPages   int   `json:"totalPages"`
	Pages        []int `json:"pages"`
	PrevDisabled bool  `json:"prevDisabled"`
	NextDisabled bool  `json:"nextDisabled"`
}

// NewPagination builds the control for a list of totalItems shown pageSize
// at a time with pageIndex (0-based) current.
func NewPagination(totalItems, pageSize, pageIndex int) *Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := TotalPages(totalItems, pageSize)
	return &Pagination{
		PageIndex:    pageIndex,
		PageSize:     pageSize,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		Pages:        PageWindow(totalPages, pageIndex),
		PrevDisabled: pageIndex <= 0,
		NextDisabled: pageIndex >= totalPages-1,
	}
}

// TotalPages is ceil(totalItems / pageSize).
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize < 1 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// PageWindow returns the 1-based page numbers to show, at most
// MaxVisiblePages of them.
//
//	12 pages, index 0  -> 1 2 3 4 5
//	12 pages, index 5  -> 5 6 7 8 9
//	12 pages, index 11 -> 8 9 10 11 12
func PageWindow(totalPages, pageIndex int) []int {
	var first int
	switch {
	case totalPages <= MaxVisiblePages:
		first = 1
	case pageIndex < 3:
		first = 1
	case pageIndex >= totalPages-3:
		first = totalPages - MaxVisiblePages + 1
	default:
		first = pageIndex
	}

	n := min(totalPages, MaxVisiblePages)
	pages := make([]int, n)
	for i := range pages {
		pages[i] = first + i
	}
	return pages
}
