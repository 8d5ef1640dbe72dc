package models

// Sort options accepted by the list endpoint. Any other value falls back
// to newest first.
const (
	SortNewest      = ""
	SortDueDate     = "dueDate"
	SortDueDateDesc = "dueDateDesc"
	SortPriority    = "priority"
)

// TaskFilters are the list query parameters. Empty means unset.
type TaskFilters struct {
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
	SortBy   string `json:"sortBy,omitempty"`
}

func (f TaskFilters) IsActive() bool {
	return f.Status != "" || f.Priority != "" || f.SortBy != ""
}
