package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(s service.MessageService) *MessageHandler {
	return &MessageHandler{svc: s}
}

type PostMessageReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Stream  bool   `json:"stream"`
}

// GetMessages godoc
//
//	@Summary	List messages of a run in conversation order
//	@Tags		message
//	@Produce	json
//	@Param		rid	path	integer	true	"Run ID"
//	@Success	200	{array}	model.TaskMessage
//	@Router		/runs/{rid}/messages [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	runID, err := parseIDParam(c, "rid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	rows, err := h.svc.List(c.Request.Context(), runID)
	if err != nil {
		serializer.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PostMessage godoc
//
//	@Summary	Append a message; a user message is relayed to the model
//	@Tags		message
//	@Accept		json
//	@Produce	json
//	@Param		rid		path		integer					true	"Run ID"
//	@Param		payload	body		handler.PostMessageReq	true	"PostMessage payload"
//	@Success	201		{object}	map[string]any
//	@Router		/runs/{rid}/messages [post]
func (h *MessageHandler) PostMessage(c *gin.Context) {
	runID, err := parseIDParam(c, "rid")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := PostMessageReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Post(c.Request.Context(), service.PostMessageInput{
		RunID:   runID,
		Role:    req.Role,
		Content: req.Content,
		Stream:  req.Stream,
	})
	if err != nil {
		serializer.Err(c, err)
		return
	}

	if req.Role != model.MessageRoleUser {
		c.JSON(http.StatusCreated, out.UserMessage)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"userMessage":      out.UserMessage,
		"assistantMessage": out.AssistantMessage,
		"upstream":         out.Upstream,
	})
}
