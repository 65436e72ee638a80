package model

// Role is the per-project access level. Ranks form a total order so the
// authorization gate can compare with a single >=.
type Role string

const (
	RoleViewer     Role = "viewer"
	RoleOperator   Role = "operator"
	RoleMaintainer Role = "maintainer"
	RoleOwner      Role = "owner"
)

var roleRank = map[Role]int{
	RoleViewer:     1,
	RoleOperator:   2,
	RoleMaintainer: 3,
	RoleOwner:      4,
}

// Rank returns the ordering value of the role; unknown roles rank 0,
// below viewer.
func (r Role) Rank() int { return roleRank[r] }

func (r Role) Valid() bool { return roleRank[r] != 0 }

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool { return r.Rank() >= min.Rank() }

type ProjectRole struct {
	ProjectID int64 `gorm:"primaryKey" json:"project_id"`
	UserID    int64 `gorm:"primaryKey" json:"user_id"`
	Role      Role  `gorm:"type:text;not null" json:"role"`
}

func (ProjectRole) TableName() string { return "project_roles" }
