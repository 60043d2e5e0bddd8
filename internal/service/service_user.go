package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/store"
	"github.com/MKhiriev/go-user-api/models"
)

// userService is the concrete implementation of UserService.
// The users resource has no business rules beyond persistence, so every
// method is a thin pass-through to the UserRepository; the only logic that
// lives here is the deliberate collapse of delete failures into a boolean.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUsers returns one page of users plus the unfiltered total row count.
func (s *userService) GetUsers(ctx context.Context, page, limit int64) ([]models.User, int64, error) {
	users, total, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing users failed: %w", err)
	}

	return users, total, nil
}

// CreateUser persists a new user exactly as submitted and returns the row
// with its server-assigned id.
func (s *userService) CreateUser(ctx context.Context, user models.NewUser) (models.User, error) {
	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// UpdateUser fully replaces email, name and password of the user matching
// userID. A missing row surfaces as store.ErrNoUserWasFound.
func (s *userService) UpdateUser(ctx context.Context, userID int64, user models.NewUser) (models.User, error) {
	updatedUser, err := s.userRepository.UpdateUser(ctx, userID, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes the user matching userID and reports bare success.
//
// The underlying statement error, when present, is logged with its cause and
// then discarded: the API boundary only distinguishes "deleted" from "not
// deleted". Deleting an id that does not exist reports success — zero
// affected rows is not a failure.
func (s *userService) DeleteUser(ctx context.Context, userID int64) bool {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		// keep the cause in the log before it is collapsed into a boolean
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return false
	}

	return true
}
