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

// MockTaskRepo is a mock implementation of TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) ListWithStats(ctx context.Context, projectID int64) ([]model.TaskWithStats, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TaskWithStats), args.Error(1)
}

func (m *MockTaskRepo) Get(ctx context.Context, id int64) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) GetInProject(ctx context.Context, id, projectID int64) (*model.Task, error) {
	args := m.Called(ctx, id, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) Save(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func intp(i int) *int { return &i }

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to idle", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(r)
		task, err := svc.Create(ctx, 1, CreateTaskInput{Title: "Ship it"})

		assert.NoError(t, err)
		assert.Equal(t, "idle", task.Status)
		assert.Equal(t, int64(1), task.ProjectID)
		assert.Equal(t, 0, task.Priority)
		r.AssertExpectations(t)
	})

	t.Run("keeps explicit status and priority", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("Create", ctx, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(r)
		task, err := svc.Create(ctx, 1, CreateTaskInput{Title: "Ship it", Status: "blocked", Priority: intp(5)})

		assert.NoError(t, err)
		assert.Equal(t, "blocked", task.Status)
		assert.Equal(t, 5, task.Priority)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		r := &MockTaskRepo{}
		svc := NewTaskService(r)

		_, err := svc.Create(ctx, 1, CreateTaskInput{Title: ""})

		assert.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("coalesces partial fields", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("Get", ctx, int64(3)).Return(&model.Task{
			ID: 3, ProjectID: 1, Title: "Old", Status: "idle", Priority: 2,
		}, nil)
		r.On("Save", ctx, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(r)
		task, err := svc.Update(ctx, 3, UpdateTaskInput{
			Title:    strp(""),
			Status:   strp("running"),
			Priority: intp(0),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Old", task.Title)
		assert.Equal(t, "running", task.Status)
		assert.Equal(t, 0, task.Priority)
	})

	t.Run("missing task is not found", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("Get", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(r)
		_, err := svc.Update(ctx, 99, UpdateTaskInput{})

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("cross-project task reads as not found", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("GetInProject", ctx, int64(3), int64(2)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(r)
		err := svc.Delete(ctx, 2, 3)

		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Contains(t, err.Error(), "Task not found for this project")
		r.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})

	t.Run("scoped task cascades", func(t *testing.T) {
		r := &MockTaskRepo{}
		r.On("GetInProject", ctx, int64(3), int64(1)).Return(&model.Task{ID: 3, ProjectID: 1}, nil)
		r.On("DeleteCascade", ctx, int64(3)).Return(nil)

		svc := NewTaskService(r)
		assert.NoError(t, svc.Delete(ctx, 1, 3))
		r.AssertExpectations(t)
	})
}
