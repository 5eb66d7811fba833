package service

import (
	"context"
	"fmt"

	"contact_manager/internal/model"
	"contact_manager/internal/repository"

	"go.uber.org/zap"
)

// SampleService backs the basics demo endpoints
type SampleService interface {
	SayHello(name string) string
	Greet(user *model.SampleUser) (string, error)
	Create(ctx context.Context, firstName, lastName string) (*model.SampleUser, error)
}

type sampleService struct {
	repo   repository.SampleUserRepository
	logger *zap.Logger
}

// NewSampleService creates a new SampleService
func NewSampleService(repo repository.SampleUserRepository, logger *zap.Logger) SampleService {
	return &sampleService{repo: repo, logger: logger}
}

func (s *sampleService) SayHello(name string) string {
	return "Hello " + name
}

// Greet addresses the authenticated sample user by full name
func (s *sampleService) Greet(user *model.SampleUser) (string, error) {
	if user == nil {
		return "", ErrUnauthorized
	}
	lastName := ""
	if user.LastName != nil {
		lastName = *user.LastName
	}
	return fmt.Sprintf("Hello %s %s", user.FirstName, lastName), nil
}

// Create stores a sample user; the last name is optional
func (s *sampleService) Create(ctx context.Context, firstName, lastName string) (*model.SampleUser, error) {
	if firstName == "" {
		return nil, ErrFirstNameRequired
	}
	s.logger.Info("create sample user", zap.String("first_name", firstName), zap.String("last_name", lastName))

	var last *string
	if lastName != "" {
		last = &lastName
	}
	user, err := s.repo.Save(ctx, firstName, last)
	if err != nil {
		return nil, fmt.Errorf("failed to save sample user: %w", err)
	}
	return user, nil
}
