package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/modules/service"
)

const ctxProjectRole = "projectRole"

// RequireProjectRole gates a mutating route behind a minimum project
// role. The project id must be resolvable from the :id path param; the
// resolved role is attached to the context for diagnostics.
func RequireProjectRole(roles service.RoleService, min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || projectID <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				serializer.ErrResponse{Error: "projectId required for role check"})
			return
		}

		role, err := roles.Require(c.Request.Context(), projectID, UserID(c), min)
		if err != nil {
			serializer.Err(c, err)
			c.Abort()
			return
		}

		c.Set(ctxProjectRole, role)
		c.Next()
	}
}

// ProjectRole returns the role resolved by RequireProjectRole, if any.
func ProjectRole(c *gin.Context) (model.Role, bool) {
	v, ok := c.Get(ctxProjectRole)
	if !ok {
		return "", false
	}
	role, ok := v.(model.Role)
	return role, ok
}
