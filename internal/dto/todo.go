package dto

import dom "todolist/internal/domain"

// CreateTodoRequest is the POST /todos body. Description and deadline must be
// present but may be empty; name must be non-empty.
type CreateTodoRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Description *string `json:"description" binding:"required"`
	Deadline    *string `json:"deadline" binding:"required"`
}

// UpdateTodoRequest is the PUT /todos/{id} body. nil = leave field as is.
// A JSON null counts as absent, same as leaving the field out.
type UpdateTodoRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
	Status      *string `json:"status"`
	Canceled    *bool   `json:"canceled"`
}

// ToPatch converts the request into the domain patch type.
func (r UpdateTodoRequest) ToPatch() dom.Patch {
	return dom.Patch{
		Name:        r.Name,
		Description: r.Description,
		Deadline:    r.Deadline,
		Status:      r.Status,
		Canceled:    r.Canceled,
	}
}

// ListTodosQuery holds the pagination query params with their defaults.
type ListTodosQuery struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

type TodoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	Canceled    bool   `json:"canceled"`
}

type PaginatedTodosResponse struct {
	Items []TodoResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Pages int            `json:"pages"`
}
