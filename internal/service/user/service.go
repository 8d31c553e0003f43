package user

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	fileStorage storage.FileStorage
}

func NewUserService(db *database.DB, userRepo user.UserRepository, fileStorage storage.FileStorage) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepo,
		fileStorage:    fileStorage,
	}
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, actorID string, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if !actor.IsAdmin() {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var designation *user.Designation
	if req.Designation != nil {
		d := user.Designation(*req.Designation)
		designation = &d
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(req.Email),
		FullName:     req.FullName,
		Role:         user.Role(req.Role),
		Designation:  designation,
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Designation != nil {
		d := user.Designation(*req.Designation)
		u.Designation = &d
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

// UploadProfilePicture implements user.UserService.
func (s *UserServiceImpl) UploadProfilePicture(ctx context.Context, userID string, filename string, file io.Reader) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	storagePath := fmt.Sprintf("profile-pictures/%s%s", userID, path.Ext(filename))
	url, err := s.fileStorage.Upload(ctx, file, storagePath)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to upload profile picture: %w", err)
	}

	u.ProfilePictureURL = &url
	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}
