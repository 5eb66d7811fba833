package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact_manager/internal/model"
	"contact_manager/internal/repository"
	"contact_manager/internal/utils"
	"contact_manager/internal/validation"

	"go.uber.org/zap"
)

// UserService provides registration, session and profile operations
type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginUserRequest) (*model.UserResponse, error)
	Get(ctx context.Context, user *model.User) (*model.UserResponse, error)
	Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error)
	Logout(ctx context.Context, user *model.User) error
}

type userService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
	newToken func() string
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
		newToken: utils.NewSessionToken,
	}
}

// Register creates a new user account with the default role
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.UserResponse, error) {
	s.logger.Debug("register user", zap.String("username", req.Username))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	total, err := s.userRepo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if total != 0 {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:  req.Username,
		Password:  hashedPassword,
		Name:      req.Name,
		Role:      model.RoleUser,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	resp := model.ToUserResponse(user)
	return &resp, nil
}

// Login checks credentials and issues a fresh session token
func (s *userService) Login(ctx context.Context, req model.LoginUserRequest) (*model.UserResponse, error) {
	s.logger.Debug("login user", zap.String("username", req.Username))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token := s.newToken()
	if err := s.userRepo.SetToken(ctx, user.Username, &token); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}
	user.Token = &token

	resp := model.ToUserResponse(user)
	resp.Token = token
	return &resp, nil
}

func (s *userService) Get(ctx context.Context, user *model.User) (*model.UserResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	resp := model.ToUserResponse(user)
	return &resp, nil
}

// Update applies a partial patch; an empty patch returns the current state untouched
func (s *userService) Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("update user", zap.String("username", user.Username))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if req.Name == nil && req.Password == nil {
		resp := model.ToUserResponse(user)
		return &resp, nil
	}

	updated := *user
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updated.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}

	resp := model.ToUserResponse(&updated)
	return &resp, nil
}

// Logout clears the stored session token
func (s *userService) Logout(ctx context.Context, user *model.User) error {
	if user == nil {
		return ErrUnauthorized
	}
	s.logger.Debug("logout user", zap.String("username", user.Username))
	if err := s.userRepo.SetToken(ctx, user.Username, nil); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
