package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/serializer"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// MockRoleService is a mock implementation of RoleService
type MockRoleService struct {
	mock.Mock
}

func (m *MockRoleService) Resolve(ctx context.Context, projectID, userID int64) (model.Role, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockRoleService) Require(ctx context.Context, projectID, userID int64, min model.Role) (model.Role, error) {
	args := m.Called(ctx, projectID, userID, min)
	return args.Get(0).(model.Role), args.Error(1)
}

func (m *MockRoleService) Assign(ctx context.Context, projectID, userID int64, role model.Role) error {
	args := m.Called(ctx, projectID, userID, role)
	return args.Error(0)
}

func setupRBACRouter(roles *MockRoleService, min model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/projects/:id", RequireProjectRole(roles, min), func(c *gin.Context) {
		role, _ := ProjectRole(c)
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func TestRequireProjectRole(t *testing.T) {
	t.Run("sufficient role passes through", func(t *testing.T) {
		roles := &MockRoleService{}
		roles.On("Require", mock.Anything, int64(1), DefaultUserID, model.RoleMaintainer).
			Return(model.RoleOwner, nil)

		r := setupRBACRouter(roles, model.RoleMaintainer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projects/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		roles.AssertExpectations(t)
	})

	t.Run("insufficient role is 403 with resolved role", func(t *testing.T) {
		roles := &MockRoleService{}
		roles.On("Require", mock.Anything, int64(1), DefaultUserID, model.RoleMaintainer).
			Return(model.RoleViewer, apperr.Forbidden("Forbidden: insufficient role", model.RoleViewer))

		r := setupRBACRouter(roles, model.RoleMaintainer)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projects/1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)

		var body serializer.ErrResponse
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Forbidden: insufficient role", body.Error)
		assert.Equal(t, model.RoleViewer, body.Role)
	})

	t.Run("non-numeric project id is 400", func(t *testing.T) {
		roles := &MockRoleService{}
		r := setupRBACRouter(roles, model.RoleMaintainer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/projects/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body serializer.ErrResponse
		require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "projectId required for role check", body.Error)
		roles.AssertNotCalled(t, "Require", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
