package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type TaskCodeHandler struct {
	svc service.TaskCodeService
}

func NewTaskCodeHandler(s service.TaskCodeService) *TaskCodeHandler {
	return &TaskCodeHandler{svc: s}
}

// ExportTaskCode godoc
//
//	@Summary	Export a project's tasks and groups as a declarative document
//	@Tags		taskcode
//	@Produce	json
//	@Param		id		path		integer	true	"Project ID"
//	@Param		groupId	query		integer	false	"Restrict to one group"
//	@Success	200		{object}	model.TaskCodeDoc
//	@Router		/projects/{id}/tasks-as-code [get]
func (h *TaskCodeHandler) ExportTaskCode(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	var groupID *int64
	if raw := c.Query("groupId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
			return
		}
		groupID = &id
	}

	doc, err := h.svc.Export(c.Request.Context(), projectID, groupID)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ApplyTaskCode godoc
//
//	@Summary	Apply a declarative document, additive and idempotent
//	@Tags		taskcode
//	@Accept		json
//	@Produce	json
//	@Param		id		path		integer				true	"Project ID"
//	@Param		payload	body		model.TaskCodeDoc	true	"Document to apply"
//	@Success	200		{object}	map[string]bool
//	@Router		/projects/{id}/tasks-as-code [put]
func (h *TaskCodeHandler) ApplyTaskCode(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	doc := model.TaskCodeDoc{}
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Apply(c.Request.Context(), projectID, &doc); err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
