package model

// ProjectHeader is the project slice of a tasks-as-code document.
type ProjectHeader struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskCodeGroup carries one group with its member tasks. A nil ID means
// "insert as new" on the write path.
type TaskCodeGroup struct {
	ID          *int64     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tasks       []TaskCode `json:"tasks"`
}

// TaskCodeDoc is the full tasks-as-code document. A task shows up under
// every group it belongs to; ungrouped_tasks holds only tasks with zero
// memberships.
type TaskCodeDoc struct {
	Project        ProjectHeader   `json:"project"`
	Groups         []TaskCodeGroup `json:"groups"`
	UngroupedTasks []TaskCode      `json:"ungrouped_tasks"`
}
