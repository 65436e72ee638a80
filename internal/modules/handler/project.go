package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/middleware"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	BasePrompt  string                 `json:"base_prompt"`
	Settings    map[string]interface{} `json:"settings"`
}

type UpdateProjectReq struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	BasePrompt  *string                `json:"base_prompt"`
	Settings    map[string]interface{} `json:"settings"`
}

// GetProjects godoc
//
//	@Summary	List projects
//	@Tags		project
//	@Produce	json
//	@Success	200	{array}	model.ProjectWithStats
//	@Router		/projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Creates a project and enrolls the caller as owner
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateProjectReq	true	"CreateProject payload"
//	@Success		201		{object}	model.Project
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		BasePrompt:  req.BasePrompt,
		Settings:    req.Settings,
		OwnerID:     middleware.UserID(c),
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		id	path		integer	true	"Project ID"
//	@Success	200	{object}	model.Project
//	@Router		/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Partial update; omitted fields keep their stored value
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			id		path		integer						true	"Project ID"
//	@Param			payload	body		handler.UpdateProjectReq	true	"UpdateProject payload"
//	@Success		200		{object}	model.Project
//	@Router			/projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		BasePrompt:  req.BasePrompt,
		Settings:    req.Settings,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Cascades over tasks, runs, messages, groups and memberships
//	@Tags			project
//	@Produce		json
//	@Param			id	path	integer	true	"Project ID"
//	@Success		200	{object}	map[string]bool
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
