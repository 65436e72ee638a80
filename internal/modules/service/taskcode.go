package service

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/modules/model"
	"github.com/taskdeck/taskdeck/internal/modules/repo"
	"github.com/taskdeck/taskdeck/internal/pkg/apperr"
)

// TaskCodeService is the tasks-as-code view over one project: export
// builds the nested document, apply reconciles one back into rows.
type TaskCodeService interface {
	Export(ctx context.Context, projectID int64, groupID *int64) (*model.TaskCodeDoc, error)
	Apply(ctx context.Context, projectID int64, doc *model.TaskCodeDoc) error
}

type taskCodeService struct {
	r        repo.TaskCodeRepo
	projects repo.ProjectRepo
}

func NewTaskCodeService(r repo.TaskCodeRepo, projects repo.ProjectRepo) TaskCodeService {
	return &taskCodeService{r: r, projects: projects}
}

func (s *taskCodeService) Export(ctx context.Context, projectID int64, groupID *int64) (*model.TaskCodeDoc, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, notFoundOr(err, "Project not found")
	}

	snap, err := s.r.Snapshot(ctx, projectID)
	if err != nil {
		return nil, apperr.Store("Failed to read tasks-as-code", err)
	}

	groupsOfTask := make(map[int64][]int64)
	tasksOfGroup := make(map[int64][]int64)
	for _, m := range snap.Memberships {
		groupsOfTask[m.TaskID] = append(groupsOfTask[m.TaskID], m.GroupID)
		tasksOfGroup[m.GroupID] = append(tasksOfGroup[m.GroupID], m.TaskID)
	}

	taskByID := make(map[int64]model.Task, len(snap.Tasks))
	for _, t := range snap.Tasks {
		taskByID[t.ID] = t
	}

	doc := &model.TaskCodeDoc{
		Project: model.ProjectHeader{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
		},
		Groups:         []model.TaskCodeGroup{},
		UngroupedTasks: []model.TaskCode{},
	}

	for _, g := range snap.Groups {
		if groupID != nil && g.ID != *groupID {
			continue
		}
		gid := g.ID
		out := model.TaskCodeGroup{
			ID:          &gid,
			Title:       g.Title,
			Description: g.Description,
			Tasks:       []model.TaskCode{},
		}
		// Preserve the snapshot's task ordering inside each group; a
		// task legitimately appears under every group it belongs to.
		for _, t := range snap.Tasks {
			for _, member := range tasksOfGroup[g.ID] {
				if member == t.ID {
					out.Tasks = append(out.Tasks, projectTaskCode(t))
					break
				}
			}
		}
		doc.Groups = append(doc.Groups, out)
	}

	for _, t := range snap.Tasks {
		if len(groupsOfTask[t.ID]) == 0 {
			doc.UngroupedTasks = append(doc.UngroupedTasks, projectTaskCode(t))
		}
	}

	return doc, nil
}

func (s *taskCodeService) Apply(ctx context.Context, projectID int64, doc *model.TaskCodeDoc) error {
	if doc == nil {
		return apperr.Validation("Invalid JSON body")
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return notFoundOr(err, "Project not found")
	}
	if err := s.r.Apply(ctx, projectID, doc); err != nil {
		return apperr.Store("Failed to apply tasks-as-code", err)
	}
	return nil
}

// projectTaskCode narrows a task row to the exported projection.
func projectTaskCode(t model.Task) model.TaskCode {
	id := t.ID
	return model.TaskCode{
		ID:          &id,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
	}
}
