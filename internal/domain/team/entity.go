package team

import "time"

// Team groups users under a team lead. Only admins manage teams.
type Team struct {
	ID        string
	Name      string
	LeadID    string
	MemberIDs []string
	CreatedAt time.Time

	// DTO / joins
	LeadName *string
}

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectComplete   ProjectStatus = "complete"
)

type Project struct {
	ID          string
	Name        string
	Client      string
	Description string
	Status      ProjectStatus
	TeamID      string
	CreatedAt   time.Time
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          string
	ProjectID   string
	AssignedTo  string
	CreatedBy   string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidProjectStatus reports whether s names a known project status.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(s) {
	case ProjectNotStarted, ProjectInProgress, ProjectComplete:
		return true
	}
	return false
}

// ValidTaskStatus reports whether s names a known task status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskTodo, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// ValidTaskPriority reports whether s names a known task priority.
func ValidTaskPriority(s string) bool {
	switch TaskPriority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
