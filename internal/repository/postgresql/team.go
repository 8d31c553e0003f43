package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/team"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

// CreateTeam implements team.TeamRepository.
func (r *teamRepository) CreateTeam(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (id, name, lead_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, t.ID, t.Name, t.LeadID).Scan(&t.CreatedAt)
	if err != nil {
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	if err := r.replaceMembers(ctx, t.ID, t.MemberIDs); err != nil {
		return team.Team{}, err
	}

	return t, nil
}

func (r *teamRepository) replaceMembers(ctx context.Context, teamID string, memberIDs []string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to clear team members: %w", err)
	}

	for _, userID := range memberIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			teamID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to add team member: %w", err)
		}
	}
	return nil
}

func (r *teamRepository) loadMembers(ctx context.Context, t *team.Team) error {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY user_id`,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	t.MemberIDs = t.MemberIDs[:0]
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return fmt.Errorf("failed to scan team member: %w", err)
		}
		t.MemberIDs = append(t.MemberIDs, userID)
	}
	return rows.Err()
}

// GetTeam implements team.TeamRepository.
func (r *teamRepository) GetTeam(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.lead_id, t.created_at, u.full_name
		FROM teams t
		LEFT JOIN users u ON u.id = t.lead_id
		WHERE t.id = $1
	`

	var t team.Team
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.LeadID, &t.CreatedAt, &t.LeadName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team: %w", err)
	}

	if err := r.loadMembers(ctx, &t); err != nil {
		return team.Team{}, err
	}
	return t, nil
}

// ListTeams implements team.TeamRepository.
func (r *teamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.lead_id, t.created_at, u.full_name
		FROM teams t
		LEFT JOIN users u ON u.id = t.lead_id
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.LeadID, &t.CreatedAt, &t.LeadName); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range teams {
		if err := r.loadMembers(ctx, &teams[i]); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

// UpdateTeam implements team.TeamRepository.
func (r *teamRepository) UpdateTeam(ctx context.Context, t team.Team) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = $1, lead_id = $2
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, t.Name, t.LeadID, t.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.ErrTeamNotFound
		}
		return fmt.Errorf("failed to update team: %w", err)
	}

	return r.replaceMembers(ctx, t.ID, t.MemberIDs)
}

// DeleteTeam implements team.TeamRepository.
func (r *teamRepository) DeleteTeam(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

// VisibleUserIDs implements team.TeamRepository. The scope is every
// member and lead of teams the viewer leads or belongs to, always
// including the viewer.
func (r *teamRepository) VisibleUserIDs(ctx context.Context, viewerID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH viewer_teams AS (
			SELECT id FROM teams WHERE lead_id = $1
			UNION
			SELECT team_id FROM team_members WHERE user_id = $1
		)
		SELECT user_id FROM team_members WHERE team_id IN (SELECT id FROM viewer_teams)
		UNION
		SELECT lead_id FROM teams WHERE id IN (SELECT id FROM viewer_teams)
		UNION
		SELECT $1::uuid
	`

	rows, err := q.Query(ctx, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query visible users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user ID: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

const projectColumns = `id, name, client, description, status, team_id, created_at`

func scanProject(row pgx.Row) (team.Project, error) {
	var p team.Project
	err := row.Scan(&p.ID, &p.Name, &p.Client, &p.Description, &p.Status, &p.TeamID, &p.CreatedAt)
	return p, err
}

// CreateProject implements team.TeamRepository.
func (r *teamRepository) CreateProject(ctx context.Context, p team.Project) (team.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, client, description, status, team_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Name, p.Client, p.Description, p.Status, p.TeamID).Scan(&p.CreatedAt)
	if err != nil {
		return team.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetProject implements team.TeamRepository.
func (r *teamRepository) GetProject(ctx context.Context, id string) (team.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Project{}, team.ErrProjectNotFound
		}
		return team.Project{}, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects implements team.TeamRepository. Empty teamIDs means all
// projects.
func (r *teamRepository) ListProjects(ctx context.Context, teamIDs []string) ([]team.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []interface{}
	if len(teamIDs) > 0 {
		query += " WHERE team_id = ANY($1)"
		args = append(args, teamIDs)
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []team.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProject implements team.TeamRepository.
func (r *teamRepository) UpdateProject(ctx context.Context, p team.Project) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = $1, client = $2, description = $3, status = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, p.Name, p.Client, p.Description, p.Status, p.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.ErrProjectNotFound
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

// DeleteProject implements team.TeamRepository.
func (r *teamRepository) DeleteProject(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrProjectNotFound
	}
	return nil
}

const taskColumns = `
	id, project_id, assigned_to, created_by, title, description,
	status, priority, due_date, created_at, updated_at
`

func scanTask(row pgx.Row) (team.Task, error) {
	var t team.Task
	err := row.Scan(
		&t.ID, &t.ProjectID, &t.AssignedTo, &t.CreatedBy, &t.Title, &t.Description,
		&t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// CreateTask implements team.TeamRepository.
func (r *teamRepository) CreateTask(ctx context.Context, t team.Task) (team.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, project_id, assigned_to, created_by, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.ProjectID, t.AssignedTo, t.CreatedBy, t.Title, t.Description,
		t.Status, t.Priority, t.DueDate,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return team.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetTask implements team.TeamRepository.
func (r *teamRepository) GetTask(ctx context.Context, id string) (team.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Task{}, team.ErrTaskNotFound
		}
		return team.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks implements team.TeamRepository.
func (r *teamRepository) ListTasks(ctx context.Context, filter team.TaskFilter) ([]team.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.ProjectID != nil && *filter.ProjectID != "" {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)
		args = append(args, *filter.ProjectID)
		argIdx++
	}
	if filter.AssignedTo != nil && *filter.AssignedTo != "" {
		query += fmt.Sprintf(" AND assigned_to = $%d", argIdx)
		args = append(args, *filter.AssignedTo)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	query += " ORDER BY due_date, created_at"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []team.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateTask implements team.TeamRepository.
func (r *teamRepository) UpdateTask(ctx context.Context, t team.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET assigned_to = $1,
		    title = $2,
		    description = $3,
		    status = $4,
		    priority = $5,
		    due_date = $6,
		    updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		t.AssignedTo, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

// DeleteTask implements team.TeamRepository.
func (r *teamRepository) DeleteTask(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTaskNotFound
	}
	return nil
}
