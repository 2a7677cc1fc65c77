package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shop-service/internal/entity"
	"shop-service/internal/events"
)

type UserService struct {
	repo      UserRepository
	publisher Publisher
	hashCost  int
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo UserRepository, publisher Publisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		hashCost:  bcrypt.DefaultCost,
	}
}

// WithHashCost sets the bcrypt cost used for new password hashes.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.hashCost = cost
	return s
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}
	return users, nil
}

// CreateUser hashes the password and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, req entity.UserRequest) (*entity.User, error) {
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	createdUser, err := s.repo.CreateUser(ctx, entity.NewUser(req, hash))
	if err != nil {
		if !errors.Is(err, entity.ErrDuplicateEmail) {
			logger.Error().Err(err).Msg("Error creating user")
		}
		return nil, err
	}

	publish(ctx, s.publisher, "user", events.ActionCreated, createdUser.ID, createdUser)
	return createdUser, nil
}

// Register creates a user from the registration form. It does not look for
// an existing account first; a taken email surfaces as entity.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, req entity.UserRequest) (*entity.User, error) {
	user, err := s.CreateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	logger.Info().Int("user_id", user.ID).Msg("User registered")
	return user, nil
}

// UpdateUser replaces every field of an existing user, including the password.
func (s *UserService) UpdateUser(ctx context.Context, id int, req entity.UserRequest) (*entity.User, error) {
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := entity.NewUser(req, hash)
	user.ID = id

	updatedUser, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) && !errors.Is(err, entity.ErrDuplicateEmail) {
			logger.Error().Err(err).Msgf("Error updating user %d", id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, "user", events.ActionUpdated, updatedUser.ID, updatedUser)
	return updatedUser, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) (*entity.User, error) {
	deletedUser, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			logger.Error().Err(err).Msgf("Error deleting user %d", id)
		}
		return nil, err
	}

	publish(ctx, s.publisher, "user", events.ActionDeleted, deletedUser.ID, deletedUser)
	return deletedUser, nil
}
