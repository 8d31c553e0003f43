package team

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/team"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
)

type TeamServiceImpl struct {
	db *database.DB
	team.TeamRepository
	user.UserRepository
}

func NewTeamService(db *database.DB, teamRepo team.TeamRepository, userRepo user.UserRepository) team.TeamService {
	return &TeamServiceImpl{
		db:             db,
		TeamRepository: teamRepo,
		UserRepository: userRepo,
	}
}

func (s *TeamServiceImpl) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return user.ErrAdminPrivilegeRequired
	}
	return nil
}

// CreateTeam implements team.TeamService.
func (s *TeamServiceImpl) CreateTeam(ctx context.Context, actorID string, req team.CreateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return team.TeamResponse{}, err
	}

	var created team.Team
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		var err error
		created, err = s.TeamRepository.CreateTeam(ctx, team.Team{
			ID:        uuid.NewString(),
			Name:      req.Name,
			LeadID:    req.LeadID,
			MemberIDs: req.MemberIDs,
		})
		return err
	})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return team.ToTeamResponse(created), nil
}

// ListTeams implements team.TeamService.
func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	teams, err := s.TeamRepository.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		responses = append(responses, team.ToTeamResponse(t))
	}
	return responses, nil
}

// GetTeam implements team.TeamService.
func (s *TeamServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	t, err := s.TeamRepository.GetTeam(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return team.ToTeamResponse(t), nil
}

// UpdateTeam implements team.TeamService.
func (s *TeamServiceImpl) UpdateTeam(ctx context.Context, actorID string, id string, req team.UpdateTeamRequest) (team.TeamResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TeamResponse{}, err
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return team.TeamResponse{}, err
	}

	var updated team.Team
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		t, err := s.TeamRepository.GetTeam(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			t.Name = *req.Name
		}
		if req.LeadID != nil {
			t.LeadID = *req.LeadID
		}
		if req.MemberIDs != nil {
			t.MemberIDs = *req.MemberIDs
		}

		if err := s.TeamRepository.UpdateTeam(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return team.TeamResponse{}, err
	}

	return team.ToTeamResponse(updated), nil
}

// DeleteTeam implements team.TeamService.
func (s *TeamServiceImpl) DeleteTeam(ctx context.Context, actorID string, id string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.TeamRepository.DeleteTeam(ctx, id)
}

// CreateProject implements team.TeamService.
func (s *TeamServiceImpl) CreateProject(ctx context.Context, actorID string, req team.CreateProjectRequest) (team.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return team.ProjectResponse{}, err
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return team.ProjectResponse{}, err
	}

	if _, err := s.TeamRepository.GetTeam(ctx, req.TeamID); err != nil {
		return team.ProjectResponse{}, err
	}

	p, err := s.TeamRepository.CreateProject(ctx, team.Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Client:      req.Client,
		Description: req.Description,
		Status:      team.ProjectNotStarted,
		TeamID:      req.TeamID,
	})
	if err != nil {
		return team.ProjectResponse{}, err
	}

	return team.ToProjectResponse(p), nil
}

// ListProjects implements team.TeamService. Admins see every project,
// everyone else the projects of teams they lead or belong to.
func (s *TeamServiceImpl) ListProjects(ctx context.Context, viewerID string) ([]team.ProjectResponse, error) {
	viewer, err := s.UserRepository.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var teamIDs []string
	if !viewer.IsAdmin() {
		teams, err := s.TeamRepository.ListTeams(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range teams {
			if t.LeadID == viewerID {
				teamIDs = append(teamIDs, t.ID)
				continue
			}
			for _, m := range t.MemberIDs {
				if m == viewerID {
					teamIDs = append(teamIDs, t.ID)
					break
				}
			}
		}
		if len(teamIDs) == 0 {
			return []team.ProjectResponse{}, nil
		}
	}

	projects, err := s.TeamRepository.ListProjects(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]team.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, team.ToProjectResponse(p))
	}
	return responses, nil
}

// GetProject implements team.TeamService.
func (s *TeamServiceImpl) GetProject(ctx context.Context, id string) (team.ProjectResponse, error) {
	p, err := s.TeamRepository.GetProject(ctx, id)
	if err != nil {
		return team.ProjectResponse{}, err
	}
	return team.ToProjectResponse(p), nil
}

// UpdateProject implements team.TeamService.
func (s *TeamServiceImpl) UpdateProject(ctx context.Context, actorID string, id string, req team.UpdateProjectRequest) (team.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return team.ProjectResponse{}, err
	}
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return team.ProjectResponse{}, err
	}

	p, err := s.TeamRepository.GetProject(ctx, id)
	if err != nil {
		return team.ProjectResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Client != nil {
		p.Client = *req.Client
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		p.Status = team.ProjectStatus(*req.Status)
	}

	if err := s.TeamRepository.UpdateProject(ctx, p); err != nil {
		return team.ProjectResponse{}, err
	}

	return team.ToProjectResponse(p), nil
}

// DeleteProject implements team.TeamService.
func (s *TeamServiceImpl) DeleteProject(ctx context.Context, actorID string, id string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.TeamRepository.DeleteProject(ctx, id)
}

// CreateTask implements team.TeamService.
func (s *TeamServiceImpl) CreateTask(ctx context.Context, actorID string, req team.CreateTaskRequest) (team.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TaskResponse{}, err
	}

	if _, err := s.TeamRepository.GetProject(ctx, req.ProjectID); err != nil {
		return team.TaskResponse{}, err
	}
	if _, err := s.UserRepository.GetByID(ctx, req.AssignedTo); err != nil {
		return team.TaskResponse{}, err
	}

	priority := team.TaskPriority(req.Priority)
	if req.Priority == "" {
		priority = team.PriorityMedium
	}
	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	t, err := s.TeamRepository.CreateTask(ctx, team.Task{
		ID:          uuid.NewString(),
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   actorID,
		Title:       req.Title,
		Description: req.Description,
		Status:      team.TaskTodo,
		Priority:    priority,
		DueDate:     dueDate,
	})
	if err != nil {
		return team.TaskResponse{}, err
	}

	return team.ToTaskResponse(t), nil
}

// ListTasks implements team.TeamService.
func (s *TeamServiceImpl) ListTasks(ctx context.Context, filter team.TaskFilter) ([]team.TaskResponse, error) {
	tasks, err := s.TeamRepository.ListTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]team.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, team.ToTaskResponse(t))
	}
	return responses, nil
}

// GetTask implements team.TeamService.
func (s *TeamServiceImpl) GetTask(ctx context.Context, id string) (team.TaskResponse, error) {
	t, err := s.TeamRepository.GetTask(ctx, id)
	if err != nil {
		return team.TaskResponse{}, err
	}
	return team.ToTaskResponse(t), nil
}

// UpdateTask implements team.TeamService. Assignees may update their own
// tasks; anyone else must be an admin or the creator.
func (s *TeamServiceImpl) UpdateTask(ctx context.Context, actorID string, id string, req team.UpdateTaskRequest) (team.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return team.TaskResponse{}, err
	}

	t, err := s.TeamRepository.GetTask(ctx, id)
	if err != nil {
		return team.TaskResponse{}, err
	}

	if t.AssignedTo != actorID && t.CreatedBy != actorID {
		if err := s.requireAdmin(ctx, actorID); err != nil {
			return team.TaskResponse{}, err
		}
	}

	if req.AssignedTo != nil {
		t.AssignedTo = *req.AssignedTo
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = team.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		t.Priority = team.TaskPriority(*req.Priority)
	}
	if req.DueDate != nil {
		t.DueDate, _ = time.Parse("2006-01-02", *req.DueDate)
	}

	if err := s.TeamRepository.UpdateTask(ctx, t); err != nil {
		return team.TaskResponse{}, err
	}

	return team.ToTaskResponse(t), nil
}

// DeleteTask implements team.TeamService.
func (s *TeamServiceImpl) DeleteTask(ctx context.Context, actorID string, id string) error {
	t, err := s.TeamRepository.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if t.CreatedBy != actorID {
		if err := s.requireAdmin(ctx, actorID); err != nil {
			return err
		}
	}
	return s.TeamRepository.DeleteTask(ctx, id)
}
