package team

import "context"

// TeamService manages teams, projects and tasks. Team CRUD is
// admin-only; project and task access follows team membership.
type TeamService interface {
	CreateTeam(ctx context.Context, actorID string, req CreateTeamRequest) (TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
	GetTeam(ctx context.Context, id string) (TeamResponse, error)
	UpdateTeam(ctx context.Context, actorID string, id string, req UpdateTeamRequest) (TeamResponse, error)
	DeleteTeam(ctx context.Context, actorID string, id string) error

	CreateProject(ctx context.Context, actorID string, req CreateProjectRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context, viewerID string) ([]ProjectResponse, error)
	GetProject(ctx context.Context, id string) (ProjectResponse, error)
	UpdateProject(ctx context.Context, actorID string, id string, req UpdateProjectRequest) (ProjectResponse, error)
	DeleteProject(ctx context.Context, actorID string, id string) error

	CreateTask(ctx context.Context, actorID string, req CreateTaskRequest) (TaskResponse, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]TaskResponse, error)
	GetTask(ctx context.Context, id string) (TaskResponse, error)
	UpdateTask(ctx context.Context, actorID string, id string, req UpdateTaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, actorID string, id string) error
}
