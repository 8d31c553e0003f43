package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/attendance"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	StartDay(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	EndDay(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	TeamStatus(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// transition parses the shared timestamp payload and dispatches one
// state-machine transition. An absent body defaults to the current time.
func (h *attendanceHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	fn func(userID string, ts time.Time) (attendance.AttendanceResponse, error),
) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	ts := time.Now()
	if r.ContentLength > 0 {
		var req attendance.TimestampRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
		if req.Timestamp != "" {
			if err := req.Validate(); err != nil {
				response.HandleError(w, err)
				return
			}
			ts = req.Time()
		}
	}

	result, err := fn(userID, ts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// StartDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartDay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID string, ts time.Time) (attendance.AttendanceResponse, error) {
		return h.attendanceService.StartDay(r.Context(), userID, ts)
	})
}

// StartBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID string, ts time.Time) (attendance.AttendanceResponse, error) {
		return h.attendanceService.StartBreak(r.Context(), userID, ts)
	})
}

// EndBreak implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID string, ts time.Time) (attendance.AttendanceResponse, error) {
		return h.attendanceService.EndBreak(r.Context(), userID, ts)
	})
}

// EndDay implements AttendanceHandler.
func (h *attendanceHandlerImpl) EndDay(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(userID string, ts time.Time) (attendance.AttendanceResponse, error) {
		return h.attendanceService.EndDay(r.Context(), userID, ts)
	})
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.GetStatus(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeamStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.TeamStatus(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := attendance.Filter{}
	query := r.URL.Query()

	if v := query.Get("user_id"); v != "" {
		filter.UserIDs = []string{v}
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := query.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.attendanceService.List(r.Context(), userID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(result.TotalCount) / result.Limit
	if int(result.TotalCount)%result.Limit != 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, result.Attendances, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
