package response

const (
	DefaultErrorMessage = "Something went wrong."
	TooManyRequests     = "Rate limit exceeded."
	RouteNotFound       = "Route not found."
	MethodNotAllowed    = "Method not allowed."
)
