package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type GroupHandler struct {
	svc service.GroupService
}

func NewGroupHandler(s service.GroupService) *GroupHandler {
	return &GroupHandler{svc: s}
}

type CreateGroupReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateGroupReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type AssignTasksReq struct {
	TaskIDs []int64 `json:"taskIds"`
}

// GetGroups godoc
//
//	@Summary	List task groups of a project with member counts
//	@Tags		group
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Success	200	{array}	model.TaskGroupWithStats
//	@Router		/projects/{id}/groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
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

// CreateGroup godoc
//
//	@Summary	Create task group
//	@Tags		group
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		payload	body		handler.CreateGroupReq	true	"CreateGroup payload"
//	@Success	201		{object}	model.TaskGroup
//	@Router		/projects/{id}/groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateGroupReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	group, err := h.svc.Create(c.Request.Context(), projectID, service.CreateGroupInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup godoc
//
//	@Summary	Update task group (partial)
//	@Tags		group
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		gid		path		integer					true	"Group ID"
//	@Param		payload	body		handler.UpdateGroupReq	true	"UpdateGroup payload"
//	@Success	200		{object}	model.TaskGroup
//	@Router		/projects/{id}/groups/{gid} [put]
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := parseIDParam(c, "gid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateGroupReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	group, err := h.svc.Update(c.Request.Context(), projectID, id, service.UpdateGroupInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup godoc
//
//	@Summary	Delete task group and its memberships, tasks survive
//	@Tags		group
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Param		gid	path	integer	true	"Group ID"
//	@Success	200	{object}	map[string]bool
//	@Router		/projects/{id}/groups/{gid} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	id, err := parseIDParam(c, "gid")
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

// AssignTasks godoc
//
//	@Summary	Add tasks to a group, duplicates ignored
//	@Tags		group
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer					true	"Project ID"
//	@Param		gid		path		integer					true	"Group ID"
//	@Param		payload	body		handler.AssignTasksReq	true	"AssignTasks payload"
//	@Success	200		{object}	map[string]bool
//	@Router		/projects/{id}/groups/{gid}/tasks [post]
func (h *GroupHandler) AssignTasks(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	groupID, err := parseIDParam(c, "gid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := AssignTasksReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.AddTasks(c.Request.Context(), projectID, groupID, req.TaskIDs); err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RemoveTask godoc
//
//	@Summary	Remove a task from a group
//	@Tags		group
//	@Produce	json
//	@Param		id	path	integer	true	"Project ID"
//	@Param		gid	path	integer	true	"Group ID"
//	@Param		tid	path	integer	true	"Task ID"
//	@Success	200	{object}	map[string]bool
//	@Router		/projects/{id}/groups/{gid}/tasks/{tid} [delete]
func (h *GroupHandler) RemoveTask(c *gin.Context) {
	groupID, err := parseIDParam(c, "gid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	taskID, err := parseIDParam(c, "tid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.RemoveTask(c.Request.Context(), groupID, taskID); err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
