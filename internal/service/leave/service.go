package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/leave"
	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/email"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	user.UserRepository

	attendanceService attendance.AttendanceService
	emailService      email.EmailService
	now               func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	userRepo user.UserRepository,
	attendanceService attendance.AttendanceService,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                db,
		LeaveRepository:   leaveRepo,
		UserRepository:    userRepo,
		attendanceService: attendanceService,
		emailService:      emailService,
		now:               time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, userID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	applicant, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if applicant.Role != user.RoleEmployee && applicant.Role != user.RoleTeamLead {
		return leave.LeaveResponse{}, leave.ErrNotAllowedToApply
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	l, err := s.LeaveRepository.Create(ctx, leave.Leave{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      leave.Type(req.Type),
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(l), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, viewerID string) ([]leave.LeaveResponse, error) {
	viewer, err := s.UserRepository.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var userIDs []string
	if viewer.Role == user.RoleEmployee {
		userIDs = []string{viewerID}
	}

	leaves, err := s.LeaveRepository.ListByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, viewerID string, id string) (leave.LeaveResponse, error) {
	viewer, err := s.UserRepository.GetByID(ctx, viewerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if viewer.Role == user.RoleEmployee && l.UserID != viewerID {
		return leave.LeaveResponse{}, leave.ErrLeaveNotFound
	}

	return leave.ToResponse(l), nil
}

// Edit implements leave.LeaveService.
func (s *LeaveServiceImpl) Edit(ctx context.Context, viewerID string, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var updated leave.Leave
	err := postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l.UserID != viewerID {
			return leave.ErrEditNotPermitted
		}
		if l.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		if req.Type != nil {
			l.Type = leave.Type(*req.Type)
		}
		if req.StartDate != nil {
			l.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
		}
		if req.EndDate != nil {
			l.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
		}
		if l.EndDate.Before(l.StartDate) {
			return leave.ErrInvalidDateRange
		}
		if req.Reason != nil {
			l.Reason = *req.Reason
		}

		if err := s.LeaveRepository.Update(ctx, l); err != nil {
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// Approve implements leave.LeaveService. Approval and the attendance
// termination of every covered day commit atomically.
func (s *LeaveServiceImpl) Approve(ctx context.Context, reviewerID string, id string, comment string) (leave.LeaveResponse, error) {
	return s.review(ctx, reviewerID, id, comment, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, reviewerID string, id string, comment string) (leave.LeaveResponse, error) {
	return s.review(ctx, reviewerID, id, comment, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, reviewerID string, id string, comment string, decision leave.Status) (leave.LeaveResponse, error) {
	reviewer, err := s.UserRepository.GetByID(ctx, reviewerID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var reviewed leave.Leave
	var applicant user.User
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if l.Status != leave.StatusPending {
			return leave.ErrLeaveAlreadyProcessed
		}

		applicant, err = s.UserRepository.GetByID(ctx, l.UserID)
		if err != nil {
			return err
		}
		if l.UserID == reviewerID || !reviewer.CanApproveLeaveOf(&applicant) {
			return leave.ErrApprovalNotPermitted
		}

		now := s.now()
		l.Status = decision
		l.ReviewedAt = &now
		if comment != "" {
			l.AdminComment = &comment
		}
		if err := s.LeaveRepository.Update(ctx, l); err != nil {
			return err
		}

		if decision == leave.StatusApproved {
			for d := l.StartDate; !d.After(l.EndDate); d = d.AddDate(0, 0, 1) {
				if err := s.attendanceService.ForceTerminate(ctx, l.UserID, d, now, attendance.StatusLeave); err != nil {
					return err
				}
			}
		}

		reviewed = l
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyReviewed(applicant, reviewed)

	return leave.ToResponse(reviewed), nil
}

// notifyReviewed sends the decision email. Failures are logged, never
// surfaced: the review has already committed.
func (s *LeaveServiceImpl) notifyReviewed(applicant user.User, l leave.Leave) {
	if s.emailService == nil {
		return
	}
	err := s.emailService.SendLeaveReviewed(
		applicant.Email,
		applicant.FullName,
		string(l.Type),
		l.StartDate.Format("2006-01-02"),
		l.EndDate.Format("2006-01-02"),
		string(l.Status),
		derefOrEmpty(l.AdminComment),
	)
	if err != nil {
		slog.Warn("failed to send leave review email", "leave_id", l.ID, "error", err)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
