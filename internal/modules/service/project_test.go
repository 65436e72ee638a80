package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) ListWithStats(ctx context.Context) ([]model.ProjectWithStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectWithStats), args.Error(1)
}

func (m *MockProjectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) CreateWithOwner(ctx context.Context, p *model.Project, userID int64) error {
	args := m.Called(ctx, p, userID)
	return args.Error(0)
}

func (m *MockProjectRepo) Save(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) DeleteCascade(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strp(s string) *string { return &s }

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		in       CreateProjectInput
		setup    func(*MockProjectRepo)
		wantErr  bool
		wantKind apperr.Kind
	}{
		{
			name: "successful creation assigns owner",
			in:   CreateProjectInput{Title: "Alpha", OwnerID: 7},
			setup: func(r *MockProjectRepo) {
				r.On("CreateWithOwner", ctx, mock.AnythingOfType("*model.Project"), int64(7)).Return(nil)
			},
		},
		{
			name:     "blank title rejected",
			in:       CreateProjectInput{Title: "   ", OwnerID: 7},
			setup:    func(r *MockProjectRepo) {},
			wantErr:  true,
			wantKind: apperr.KindValidation,
		},
		{
			name: "store failure surfaces",
			in:   CreateProjectInput{Title: "Alpha", OwnerID: 7},
			setup: func(r *MockProjectRepo) {
				r.On("CreateWithOwner", ctx, mock.AnythingOfType("*model.Project"), int64(7)).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantKind: apperr.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockProjectRepo{}
			tt.setup(r)

			svc := NewProjectService(r)
			p, err := svc.Create(ctx, tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.in.Title, p.Title)
			}
			r.AssertExpectations(t)
		})
	}
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() *model.Project {
		return &model.Project{ID: 1, Title: "Alpha", Description: "first", BasePrompt: "be brief"}
	}

	tests := []struct {
		name  string
		in    UpdateProjectInput
		check func(*testing.T, *model.Project)
	}{
		{
			name: "nil fields keep stored values",
			in:   UpdateProjectInput{Description: strp("second")},
			check: func(t *testing.T, p *model.Project) {
				assert.Equal(t, "Alpha", p.Title)
				assert.Equal(t, "second", p.Description)
				assert.Equal(t, "be brief", p.BasePrompt)
			},
		},
		{
			name: "blank title is ignored",
			in:   UpdateProjectInput{Title: strp("  "), BasePrompt: strp("")},
			check: func(t *testing.T, p *model.Project) {
				assert.Equal(t, "Alpha", p.Title)
				assert.Equal(t, "", p.BasePrompt)
			},
		},
		{
			name: "non-empty title replaces",
			in:   UpdateProjectInput{Title: strp("Beta")},
			check: func(t *testing.T, p *model.Project) {
				assert.Equal(t, "Beta", p.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockProjectRepo{}
			r.On("Get", ctx, int64(1)).Return(stored(), nil)
			r.On("Save", ctx, mock.AnythingOfType("*model.Project")).Return(nil)

			svc := NewProjectService(r)
			p, err := svc.Update(ctx, 1, tt.in)

			assert.NoError(t, err)
			tt.check(t, p)
			r.AssertExpectations(t)
		})
	}
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing project is not found", func(t *testing.T) {
		r := &MockProjectRepo{}
		r.On("Get", ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(r)
		err := svc.Delete(ctx, 42)

		assert.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		r.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})

	t.Run("existing project cascades", func(t *testing.T) {
		r := &MockProjectRepo{}
		r.On("Get", ctx, int64(1)).Return(&model.Project{ID: 1, Title: "Alpha"}, nil)
		r.On("DeleteCascade", ctx, int64(1)).Return(nil)

		svc := NewProjectService(r)
		assert.NoError(t, svc.Delete(ctx, 1))
		r.AssertExpectations(t)
	})
}
