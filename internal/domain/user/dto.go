package user

import (
	"github.com/workpulse/workpulse-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	Designation *string `json:"designation,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, team_lead, employee"})
	}
	if r.Designation != nil && !ValidDesignation(*r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "unknown designation"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Designation *string `json:"designation,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.Designation != nil && !ValidDesignation(*r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "unknown designation"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	Role              string  `json:"role"`
	Designation       *string `json:"designation,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// ToResponse maps a User entity to its API representation.
func ToResponse(u User) UserResponse {
	var designation *string
	if u.Designation != nil {
		d := string(*u.Designation)
		designation = &d
	}
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FullName:          u.FullName,
		Role:              string(u.Role),
		Designation:       designation,
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
