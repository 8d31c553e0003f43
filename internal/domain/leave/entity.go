package leave

import "time"

type Type string

const (
	TypeCasual Type = "casual"
	TypeSick   Type = "sick"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave is an absence request spanning an inclusive date range. Approval
// overrides normal attendance status for every covered day.
type Leave struct {
	ID           string
	UserID       string
	Type         Type
	StartDate    time.Time // calendar day, inclusive
	EndDate      time.Time // calendar day, inclusive
	Reason       string
	Status       Status
	AdminComment *string
	AppliedAt    time.Time
	ReviewedAt   *time.Time
	UpdatedAt    time.Time

	// DTO / joins
	UserName *string
}

// TotalDays returns the number of covered calendar days, inclusive.
func (l Leave) TotalDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// ValidType reports whether s names a known leave type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeCasual, TypeSick:
		return true
	}
	return false
}
