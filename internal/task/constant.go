package task

// Known status values. Other values are stored as-is.
const (
	StatusPending   = "Pending"
	StatusFinished  = "Finished"
	StatusCancelled = "Cancelled"
)

// Known priority values. The set is open.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Sortable fields, named as they appear in the JSON representation.
const (
	SortByTitle     = "title"
	SortByStartTime = "startTime"
	SortByEndTime   = "endTime"
	SortByPriority  = "priority"
	SortByStatus    = "status"
	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"

	DefaultSortBy = SortByStartTime
)

var sortableFields = map[string]struct{}{
	SortByTitle:     {},
	SortByStartTime: {},
	SortByEndTime:   {},
	SortByPriority:  {},
	SortByStatus:    {},
	SortByCreatedAt: {},
	SortByUpdatedAt: {},
}

// IsSortable reports whether field may be used as a sort key.
func IsSortable(field string) bool {
	_, ok := sortableFields[field]
	return ok
}
