package pagination

// PageSize is a fixed enumerated page size. Arbitrary integers are rejected so
// list endpoints cannot be asked for unbounded pages.
type PageSize int

const (
	Two     PageSize = 2
	Five    PageSize = 5
	Ten     PageSize = 10
	Hundred PageSize = 100
)

// DefaultPageSize is used when a caller does not specify one.
const DefaultPageSize = Five

// IsValid reports whether the page size is one of the enumerated values.
func (p PageSize) IsValid() bool {
	switch p {
	case Two, Five, Ten, Hundred:
		return true
	}
	return false
}

// SortDirection orders query results ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// IsValid reports whether the direction is a defined value.
func (d SortDirection) IsValid() bool {
	return d == Ascending || d == Descending
}

// Paged is a single page of results plus paging metadata. CurrentPage is
// 1-based; TotalPages is ceil(TotalCount / PageSize).
type Paged[T any] struct {
	Items       []T      `json:"items"`
	CurrentPage int      `json:"currentPage"`
	TotalPages  int      `json:"totalPages"`
	PageSize    PageSize `json:"pageSize"`
	TotalCount  int      `json:"totalCount"`
}

// NewPaged builds a Paged value, deriving TotalPages from the total count.
func NewPaged[T any](items []T, currentPage int, pageSize PageSize, totalCount int) Paged[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + int(pageSize) - 1) / int(pageSize)
	}
	return Paged[T]{
		Items:       items,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalCount:  totalCount,
	}
}

// MapPaged converts a page of one item type into another, keeping the paging
// metadata intact.
func MapPaged[T, U any](p Paged[T], fn func(T) U) Paged[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Paged[U]{
		Items:       items,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
	}
}

// Offset returns the query offset for a 1-based page number.
func Offset(page int, pageSize PageSize) int {
	return (page - 1) * int(pageSize)
}
