package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type RunHandler struct {
	svc service.RunService
}

func NewRunHandler(s service.RunService) *RunHandler {
	return &RunHandler{svc: s}
}

type UpdateRunReq struct {
	Status     *string    `json:"status"`
	RunSummary *string    `json:"run_summary"`
	FinishedAt *time.Time `json:"finished_at"`
}

// GetRuns godoc
//
//	@Summary	List runs of a project, most recent first
//	@Tags		run
//	@Produce	json
//	@Param		id		path	integer	true	"Project ID"
//	@Param		taskId	query	integer	false	"Filter by task"
//	@Success	200		{array}	model.TaskRunWithTask
//	@Router		/projects/{id}/runs [get]
func (h *RunHandler) GetRuns(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	var taskID *int64
	if raw := c.Query("taskId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		taskID = &id
	}

	rows, err := h.svc.List(c.Request.Context(), projectID, taskID)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// StartRun godoc
//
//	@Summary	Start a run for a task
//	@Tags		run
//	@Produce	json
//	@Param		id	path		integer	true	"Project ID"
//	@Param		tid	path		integer	true	"Task ID"
//	@Success	201	{object}	model.TaskRun
//	@Router		/projects/{id}/runs/tasks/{tid}/start [post]
func (h *RunHandler) StartRun(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := parseIDParam(c, "tid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	run, err := h.svc.Start(c.Request.Context(), projectID, taskID)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// UpdateRun godoc
//
//	@Summary	Update run status or summary
//	@Tags		run
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		rid		path		integer					true	"Run ID"
//	@Param		payload	body		handler.UpdateRunReq	true	"UpdateRun payload"
//	@Success	200		{object}	model.TaskRun
//	@Router		/projects/{id}/runs/{rid} [put]
func (h *RunHandler) UpdateRun(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := parseIDParam(c, "rid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateRunReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	run, err := h.svc.Update(c.Request.Context(), projectID, id, service.UpdateRunInput{
		Status:     req.Status,
		RunSummary: req.RunSummary,
		FinishedAt: req.FinishedAt,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}
