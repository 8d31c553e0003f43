package team

import (
	"time"

	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type CreateTeamRequest struct {
	Name      string   `json:"name"`
	LeadID    string   `json:"lead_id"`
	MemberIDs []string `json:"member_ids"`
}

func (r CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.LeadID) {
		errs = append(errs, validator.ValidationError{Field: "lead_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTeamRequest struct {
	Name      *string   `json:"name,omitempty"`
	LeadID    *string   `json:"lead_id,omitempty"`
	MemberIDs *[]string `json:"member_ids,omitempty"`
}

func (r UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.LeadID != nil && validator.IsEmpty(*r.LeadID) {
		errs = append(errs, validator.ValidationError{Field: "lead_id", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Client      string `json:"client"`
	Description string `json:"description"`
	TeamID      string `json:"team_id"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Client) {
		errs = append(errs, validator.ValidationError{Field: "client", Message: "is required"})
	}
	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{Field: "team_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Client      *string `json:"client,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (r UpdateProjectRequest) Validate() error {
	if r.Status != nil && !ValidProjectStatus(*r.Status) {
		return validator.ValidationErrors{{Field: "status", Message: "must be one of not_started, in_progress, complete"}}
	}
	return nil
}

type CreateTaskRequest struct {
	ProjectID   string `json:"project_id"`
	AssignedTo  string `json:"assigned_to"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

func (r CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "is required"})
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Priority != "" && !ValidTaskPriority(r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of low, medium, high"})
	}
	if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	AssignedTo  *string `json:"assigned_to,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !ValidTaskStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of todo, in_progress, completed"})
	}
	if r.Priority != nil && !ValidTaskPriority(*r.Priority) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of low, medium, high"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskFilter struct {
	ProjectID  *string
	AssignedTo *string
	Status     *string
}

type TeamResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	LeadID    string   `json:"lead_id"`
	LeadName  *string  `json:"lead_name,omitempty"`
	MemberIDs []string `json:"member_ids"`
	CreatedAt string   `json:"created_at"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Client      string `json:"client"`
	Description string `json:"description"`
	Status      string `json:"status"`
	TeamID      string `json:"team_id"`
	CreatedAt   string `json:"created_at"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	AssignedTo  string `json:"assigned_to"`
	CreatedBy   string `json:"created_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	CreatedAt   string `json:"created_at"`
}

func ToTeamResponse(t Team) TeamResponse {
	members := t.MemberIDs
	if members == nil {
		members = []string{}
	}
	return TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		LeadID:    t.LeadID,
		LeadName:  t.LeadName,
		MemberIDs: members,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func ToProjectResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Description: p.Description,
		Status:      string(p.Status),
		TeamID:      p.TeamID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
}

func ToTaskResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
