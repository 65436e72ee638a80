package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    *int   `json:"priority"`
	TaskPrompt  string `json:"task_prompt"`
}

type UpdateTaskReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
	TaskPrompt  *string `json:"task_prompt"`
}

// GetTasks godoc
//
//	@Summary	List tasks of a project, creation time ascending
//	@Tags		task
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Success	200	{array}	model.TaskWithStats
//	@Router		/projects/{id}/tasks [get]
func (h *TaskHandler) GetTasks(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rows, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateTask godoc
//
//	@Summary	Create task
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		payload	body		handler.CreateTaskReq	true	"CreateTask payload"
//	@Success	201		{object}	model.Task
//	@Router		/projects/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	task, err := h.svc.Create(c.Request.Context(), projectID, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		TaskPrompt:  req.TaskPrompt,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTask godoc
//
//	@Summary	Get task
//	@Tags		task
//	@Produce	json
//	@Param		id	path		integer	true	"Project ID"
//	@Param		tid	path		integer	true	"Task ID"
//	@Success	200	{object}	model.Task
//	@Router		/projects/{id}/tasks/{tid} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, err := parseIDParam(c, "tid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	task, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
//
//	@Summary	Update task (partial)
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		tid		path		integer					true	"Task ID"
//	@Param		payload	body		handler.UpdateTaskReq	true	"UpdateTask payload"
//	@Success	200		{object}	model.Task
//	@Router		/projects/{id}/tasks/{tid} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := parseIDParam(c, "tid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	task, err := h.svc.Update(c.Request.Context(), id, service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		TaskPrompt:  req.TaskPrompt,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
//
//	@Summary	Delete task with its runs, messages and memberships
//	@Tags		task
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Param		tid	path	integer	true	"Task ID"
//	@Success	200	{object}	map[string]bool
//	@Router		/projects/{id}/tasks/{tid} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := parseIDParam(c, "tid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, id); err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
