package domain

import "time"

// StatusNotDone is the status every todo starts with. Status is free-form
// text otherwise; cancellation is tracked separately and the two are not
// coupled.
const StatusNotDone = "not_done"

// Domain entity: the business object (source of truth).
// Does not depend on Gin, Mongo or Redis.
type Todo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"` // ISO-8601 text, set once at creation
	Deadline    string `json:"deadline"`  // caller-supplied text, not validated as a date
	Status      string `json:"status"`
	Canceled    bool   `json:"canceled"`
}

// Draft is a todo that has not been persisted yet: every field of Todo
// except the store-assigned id.
type Draft struct {
	Name        string
	Description string
	CreatedAt   string
	Deadline    string
	Status      string
	Canceled    bool
}

// NewDraft stamps the server-controlled fields onto a creation request.
// Pure function of its inputs and now.
func NewDraft(name, description, deadline string, now time.Time) Draft {
	return Draft{
		Name:        name,
		Description: description,
		CreatedAt:   now.UTC().Format(time.RFC3339),
		Deadline:    deadline,
		Status:      StatusNotDone,
		Canceled:    false,
	}
}

// TodoPage is one page of todos plus the full collection count.
// The JSON tags let the cache layer round-trip it as-is.
type TodoPage struct {
	Items []Todo `json:"items"`
	Total int64  `json:"total"`
}
