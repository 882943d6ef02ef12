package models

// FilterAll disables a discrete criterion
const FilterAll = "All"

// Blueprint status values
const (
	StatusReleased   = "RELEASED"
	StatusUnreleased = "UNRELEASED"
	StatusNothing    = "NOTHING"
)

// Criteria holds the four independent row filters
type Criteria struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Category string `json:"category"`
	Pool     string `json:"pool"`
}

// DefaultCriteria matches every row
func DefaultCriteria() Criteria {
	return Criteria{
		Status:   FilterAll,
		Category: FilterAll,
		Pool:     FilterAll,
	}
}

// FilterOptions lists the values offered by each select filter
type FilterOptions struct {
	Statuses   []string `json:"statuses"`
	Categories []string `json:"categories"`
	Pools      []string `json:"pools"`
}
