package domain

// ContextKey is the type for values the auth middleware stores on the
// request context.
type ContextKey string

const (
	KeyUserID    ContextKey = "UserID"
	KeyUserEmail ContextKey = "UserEmail"
	KeyRequestID ContextKey = "RequestID"
)
