package handlers

import (
	"errors"
	"net/http"
	"strings"

	dom "todolist/internal/domain"
	"todolist/internal/dto"
	"todolist/internal/repo"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// List godoc
// @Summary      List todos, paginated
// @Tags         todos
// @Produce      json
// @Param        page   query     int  false  "Page number (>=1)"        default(1)
// @Param        limit  query     int  false  "Items per page (1-100)"   default(10)
// @Success      200    {object}  dto.PaginatedTodosResponse
// @Failure      422    {object}  map[string]interface{}
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	var q dto.ListTodosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationError(c, err)
		return
	}
	page, err := h.svc.List(c.Request.Context(), q.Page, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.PaginatedTodosResponse{
		Items: todosToResponses(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: page.Pages,
	})
}

// GetByID godoc
// @Summary      Get a todo by ID
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo ID"
// @Success      200  {object}  dto.TodoResponse
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /todos/{id} [get]
func (h *TodoHandler) GetByID(c *gin.Context) {
	t, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		todoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.TodoResponse
// @Failure      422   {object}  map[string]interface{}
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Name, *req.Description, *req.Deadline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, todoToResponse(t))
}

// Update godoc
// @Summary      Partially update a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Todo ID"
// @Param        body  body      dto.UpdateTodoRequest  true  "Fields to change"
// @Success      200   {object}  dto.TodoResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.ToPatch())
	if err != nil {
		if errors.Is(err, service.ErrEmptyPatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		todoError(c, err)
		return
	}
	c.JSON(http.StatusOK, todoToResponse(t))
}

// Delete godoc
// @Summary      Delete a todo
// @Tags         todos
// @Param        id   path  string  true  "Todo ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]interface{}
// @Router       /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		todoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// todoError maps service/repo errors shared by the id-based operations.
func todoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
	case errors.Is(err, repo.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []gin.H{
			{"field": "id", "error": "invalid todo id"},
		}})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// validationError renders a binding failure as 422 with per-field detail
// when the validator provides it.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			detail = append(detail, gin.H{
				"field": strings.ToLower(fe.Field()),
				"error": fe.Tag(),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": detail})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		Deadline:    t.Deadline,
		Status:      t.Status,
		Canceled:    t.Canceled,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
