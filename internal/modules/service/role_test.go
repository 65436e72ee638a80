package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// MockRoleRepo is a mock implementation of RoleRepo
type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) Get(ctx context.Context, projectID, userID int64) (*model.ProjectRole, error) {
	args := m.Called(ctx, projectID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectRole), args.Error(1)
}

func (m *MockRoleRepo) Assign(ctx context.Context, pr *model.ProjectRole) error {
	args := m.Called(ctx, pr)
	return args.Error(0)
}

func TestRoleService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("missing row resolves to the default", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Get", ctx, int64(1), int64(7)).Return(nil, nil)

		svc := NewRoleService(r, model.RoleOwner)
		role, err := svc.Resolve(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleOwner, role)
	})

	t.Run("stored row wins over the default", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Get", ctx, int64(1), int64(7)).
			Return(&model.ProjectRole{ProjectID: 1, UserID: 7, Role: model.RoleViewer}, nil)

		svc := NewRoleService(r, model.RoleOwner)
		role, err := svc.Resolve(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleViewer, role)
	})

	t.Run("invalid configured default falls back to owner", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Get", ctx, int64(1), int64(7)).Return(nil, nil)

		svc := NewRoleService(r, model.Role("superuser"))
		role, err := svc.Resolve(ctx, 1, 7)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleOwner, role)
	})
}

func TestRoleService_Require(t *testing.T) {
	ctx := context.Background()

	t.Run("insufficient rank is forbidden", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Get", ctx, int64(1), int64(7)).
			Return(&model.ProjectRole{ProjectID: 1, UserID: 7, Role: model.RoleViewer}, nil)

		svc := NewRoleService(r, model.RoleOwner)
		_, err := svc.Require(ctx, 1, 7, model.RoleMaintainer)

		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		e, ok := apperr.As(err)
		assert.True(t, ok)
		assert.Equal(t, model.RoleViewer, e.Role)
	})

	t.Run("equal rank passes", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Get", ctx, int64(1), int64(7)).
			Return(&model.ProjectRole{ProjectID: 1, UserID: 7, Role: model.RoleMaintainer}, nil)

		svc := NewRoleService(r, model.RoleOwner)
		role, err := svc.Require(ctx, 1, 7, model.RoleMaintainer)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleMaintainer, role)
	})
}

func TestRoleService_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown role rejected", func(t *testing.T) {
		r := &MockRoleRepo{}
		svc := NewRoleService(r, model.RoleOwner)

		err := svc.Assign(ctx, 1, 7, model.Role("admin"))

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		r.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything)
	})

	t.Run("valid role upserted", func(t *testing.T) {
		r := &MockRoleRepo{}
		r.On("Assign", ctx, &model.ProjectRole{ProjectID: 1, UserID: 7, Role: model.RoleOperator}).Return(nil)

		svc := NewRoleService(r, model.RoleOwner)
		assert.NoError(t, svc.Assign(ctx, 1, 7, model.RoleOperator))
		r.AssertExpectations(t)
	})
}
