package types

// ------------------------------
// Request Types
// ------------------------------

// CreateTodoRequest is the full record sent on creation. No field is
// omitted, so an empty title still goes over the wire.
type CreateTodoRequest struct {
	Title     string `json:"title"`
	UserID    int    `json:"userId"`
	Completed bool   `json:"completed"`
}

// UpdateTodoRequest carries only the mutable fields. id travels in the path
// and userId is never resent.
type UpdateTodoRequest struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewCreateTodoRequest builds the creation body for title.
func NewCreateTodoRequest(title string) CreateTodoRequest {
	return CreateTodoRequest{Title: title, UserID: OwnerID, Completed: false}
}

// NewUpdateTodoRequest picks the mutable fields out of t.
func NewUpdateTodoRequest(t Todo) UpdateTodoRequest {
	return UpdateTodoRequest{Title: t.Title, Completed: t.Completed}
}
