package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// MockGroupRepo is a mock implementation of GroupRepo
type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) ListWithStats(ctx context.Context, projectID int64) ([]model.TaskGroupWithStats, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskGroupWithStats), args.Error(1)
}

func (m *MockGroupRepo) GetInProject(ctx context.Context, id, projectID int64) (*model.TaskGroup, error) {
	args := m.Called(ctx, id, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TaskGroup), args.Error(1)
}

func (m *MockGroupRepo) Create(ctx context.Context, g *model.TaskGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGroupRepo) Save(ctx context.Context, g *model.TaskGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGroupRepo) Delete(ctx context.Context, id, projectID int64) error {
	args := m.Called(ctx, id, projectID)
	return args.Error(0)
}

func (m *MockGroupRepo) AddMembers(ctx context.Context, groupID int64, taskIDs []int64) error {
	args := m.Called(ctx, groupID, taskIDs)
	return args.Error(0)
}

func (m *MockGroupRepo) RemoveMember(ctx context.Context, groupID, taskID int64) (bool, error) {
	args := m.Called(ctx, groupID, taskID)
	return args.Bool(0), args.Error(1)
}

func TestGroupService_AddTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id list rejected", func(t *testing.T) {
		r := &MockGroupRepo{}
		svc := NewGroupService(r)

		err := svc.AddTasks(ctx, 1, 2, nil)

		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "taskIds must be a non-empty array")
		r.AssertNotCalled(t, "AddMembers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("group outside project is not found", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("GetInProject", ctx, int64(2), int64(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewGroupService(r)
		err := svc.AddTasks(ctx, 1, 2, []int64{3})

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("members added idempotently", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("GetInProject", ctx, int64(2), int64(1)).Return(&model.TaskGroup{ID: 2, ProjectID: 1}, nil)
		r.On("AddMembers", ctx, int64(2), []int64{3, 4}).Return(nil)

		svc := NewGroupService(r)
		assert.NoError(t, svc.AddTasks(ctx, 1, 2, []int64{3, 4}))
		r.AssertExpectations(t)
	})
}

func TestGroupService_RemoveTask(t *testing.T) {
	ctx := context.Background()

	t.Run("absent membership is not found", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("RemoveMember", ctx, int64(2), int64(3)).Return(false, nil)

		svc := NewGroupService(r)
		err := svc.RemoveTask(ctx, 2, 3)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "Membership not found")
	})

	t.Run("existing membership removed", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("RemoveMember", ctx, int64(2), int64(3)).Return(true, nil)

		svc := NewGroupService(r)
		assert.NoError(t, svc.RemoveTask(ctx, 2, 3))
	})
}

func TestGroupService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing group is not found", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("Delete", ctx, int64(2), int64(1)).Return(gorm.ErrRecordNotFound)

		svc := NewGroupService(r)
		err := svc.Delete(ctx, 1, 2)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("existing group deleted", func(t *testing.T) {
		r := &MockGroupRepo{}
		r.On("Delete", ctx, int64(2), int64(1)).Return(nil)

		svc := NewGroupService(r)
		assert.NoError(t, svc.Delete(ctx, 1, 2))
	})
}
