package http

// Client-facing messages. Store errors never leak past these.
const (
	msgAllFieldsRequired = "All fields are required."
	msgInvalidBody       = "Invalid request body."
	msgInvalidSortBy     = "Invalid sortBy field."
	msgTaskNotFound      = "Task not found."
	msgTaskDeleted       = "Task deleted successfully."

	msgFailedCreate = "Failed to create task."
	msgFailedList   = "Failed to fetch tasks."
	msgFailedDetail = "Failed to fetch task."
	msgFailedUpdate = "Failed to update task."
	msgFailedDelete = "Failed to delete task."
	msgFailedStats  = "Failed to fetch statistics."
)
