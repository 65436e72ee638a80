package service

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

type RoleService interface {
	// Resolve returns the caller's effective role on a project; when no
	// row exists the configured default applies.
	Resolve(ctx context.Context, projectID, userID int64) (model.Role, error)
	// Require resolves and enforces a minimum rank.
	Require(ctx context.Context, projectID, userID int64, min model.Role) (model.Role, error)
	Assign(ctx context.Context, projectID, userID int64, role model.Role) error
}

type roleService struct {
	r           repo.RoleRepo
	defaultRole model.Role
}

func NewRoleService(r repo.RoleRepo, defaultRole model.Role) RoleService {
	if !defaultRole.Valid() {
		defaultRole = model.RoleOwner
	}
	return &roleService{r: r, defaultRole: defaultRole}
}

func (s *roleService) Resolve(ctx context.Context, projectID, userID int64) (model.Role, error) {
	pr, err := s.r.Get(ctx, projectID, userID)
	if err != nil {
		return "", err
	}
	if pr == nil {
		return s.defaultRole, nil
	}
	return pr.Role, nil
}

func (s *roleService) Require(ctx context.Context, projectID, userID int64, min model.Role) (model.Role, error) {
	role, err := s.Resolve(ctx, projectID, userID)
	if err != nil {
		return "", err
	}
	if !role.AtLeast(min) {
		return role, apperr.Forbidden("Forbidden: insufficient role", role)
	}
	return role, nil
}

func (s *roleService) Assign(ctx context.Context, projectID, userID int64, role model.Role) error {
	if !role.Valid() {
		return apperr.Validation("invalid role")
	}
	return s.r.Assign(ctx, &model.ProjectRole{ProjectID: projectID, UserID: userID, Role: role})
}
