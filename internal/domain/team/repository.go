package team

import "context"

// TeamRepository defines data access for teams, projects and tasks.
type TeamRepository interface {
	// CreateTeam inserts a team with its member set
	CreateTeam(ctx context.Context, t Team) (Team, error)

	// GetTeam retrieves a team with members
	GetTeam(ctx context.Context, id string) (Team, error)

	// ListTeams retrieves all teams with members
	ListTeams(ctx context.Context) ([]Team, error)

	// UpdateTeam replaces name, lead and member set
	UpdateTeam(ctx context.Context, t Team) error

	// DeleteTeam removes a team and its memberships
	DeleteTeam(ctx context.Context, id string) error

	// VisibleUserIDs resolves the viewer's visibility scope: the IDs
	// of every member and lead of teams the viewer leads or belongs
	// to, the viewer included.
	VisibleUserIDs(ctx context.Context, viewerID string) ([]string, error)

	CreateProject(ctx context.Context, p Project) (Project, error)
	GetProject(ctx context.Context, id string) (Project, error)
	ListProjects(ctx context.Context, teamIDs []string) ([]Project, error)
	UpdateProject(ctx context.Context, p Project) error
	DeleteProject(ctx context.Context, id string) error

	CreateTask(ctx context.Context, t Task) (Task, error)
	GetTask(ctx context.Context, id string) (Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
	UpdateTask(ctx context.Context, t Task) error
	DeleteTask(ctx context.Context, id string) error
}
