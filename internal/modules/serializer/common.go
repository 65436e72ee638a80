package serializer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

var log = zap.NewNop()

// SetLogger installs the process logger; unexpected errors are logged
// here so handlers don't have to.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// ErrResponse is the wire shape of every error body.
type ErrResponse struct {
	Error  string     `json:"error"`
	Detail string     `json:"detail,omitempty"`
	Role   model.Role `json:"role,omitempty"`
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Err renders any service error as {error, detail?} with the right
// status. Unexpected errors are logged and degraded to a generic body
// so internals never leak past a message string.
func Err(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		resp := ErrResponse{Error: e.Msg, Role: e.Role}
		if e.Err != nil {
			resp.Detail = e.Err.Error()
		}
		c.JSON(StatusOf(e.Kind), resp)
		return
	}

	log.Sugar().Errorw("unexpected error", "err", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, ErrResponse{Error: "Internal server error", Detail: err.Error()})
}

// ParamErr renders a binding failure on the request itself.
func ParamErr(msg string, err error) ErrResponse {
	if msg == "" {
		msg = "parameter error"
	}
	resp := ErrResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	return resp
}
