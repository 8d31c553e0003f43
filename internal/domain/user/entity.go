package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"     // Full access, manages users and teams
	RoleTeamLead Role = "team_lead" // Leads teams, approves employee leave
	RoleEmployee Role = "employee"  // Regular employee
)

type Designation string

const (
	DesignationFrontendDev    Designation = "frontend_dev"
	DesignationBackendDev     Designation = "backend_dev"
	DesignationFullstackDev   Designation = "fullstack_dev"
	DesignationMobileDev      Designation = "mobile_dev"
	DesignationUIUXDesigner   Designation = "ui_ux_designer"
	DesignationProjectManager Designation = "project_manager"
	DesignationHR             Designation = "hr"
	DesignationQA             Designation = "qa"
	DesignationDevOps         Designation = "devops"
)

type User struct {
	ID                string
	Email             string
	FullName          string
	Role              Role
	Designation       *Designation
	ProfilePictureURL *string
	PasswordHash      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsAdmin checks if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTeamLead checks if user leads teams
func (u *User) IsTeamLead() bool {
	return u.Role == RoleTeamLead
}

// CanApproveLeaveOf reports whether u may approve or reject a leave
// request applied by target. Admins approve anyone; team leads only
// regular employees.
func (u *User) CanApproveLeaveOf(target *User) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleTeamLead:
		return target.Role == RoleEmployee
	default:
		return false
	}
}

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleTeamLead, RoleEmployee:
		return true
	}
	return false
}

// ValidDesignation reports whether s names a known designation.
func ValidDesignation(s string) bool {
	switch Designation(s) {
	case DesignationFrontendDev, DesignationBackendDev, DesignationFullstackDev,
		DesignationMobileDev, DesignationUIUXDesigner, DesignationProjectManager,
		DesignationHR, DesignationQA, DesignationDevOps:
		return true
	}
	return false
}
