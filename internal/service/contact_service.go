package service

import (
	"context"
	"fmt"
	"time"

	"contact_manager/internal/model"
	"contact_manager/internal/repository"
	"contact_manager/internal/validation"

	"go.uber.org/zap"
)

// ContactService defines operations for a user's contacts
type ContactService interface {
	Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error)
	Update(ctx context.Context, user *model.User, req model.UpdateContactRequest) (*model.ContactResponse, error)
	Remove(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error)
	Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error)
}

type contactService struct {
	repo   repository.ContactRepository
	logger *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository, logger *zap.Logger) ContactService {
	return &contactService{repo: repo, logger: logger}
}

// findOwnedContact resolves a contact through a lookup narrowed to the owner
func findOwnedContact(ctx context.Context, repo repository.ContactRepository, username string, contactID int64) (*model.Contact, error) {
	contact, err := repo.FindByOwner(ctx, username, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("create contact", zap.String("username", user.Username))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repo: %w", err)
	}

	resp := model.ToContactResponse(contact)
	return &resp, nil
}

func (s *contactService) Get(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	contact, err := findOwnedContact(ctx, s.repo, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	resp := model.ToContactResponse(contact)
	return &resp, nil
}

func (s *contactService) Update(ctx context.Context, user *model.User, req model.UpdateContactRequest) (*model.ContactResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("update contact", zap.String("username", user.Username), zap.Int64("contact_id", req.ID))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	contact, err := findOwnedContact(ctx, s.repo, user.Username, req.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = req.FirstName
	if req.LastName != nil {
		contact.LastName = req.LastName
	}
	if req.Email != nil {
		contact.Email = req.Email
	}
	if req.Phone != nil {
		contact.Phone = req.Phone
	}
	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact in repo: %w", err)
	}

	resp := model.ToContactResponse(contact)
	return &resp, nil
}

func (s *contactService) Remove(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("remove contact", zap.String("username", user.Username), zap.Int64("contact_id", contactID))

	contact, err := findOwnedContact(ctx, s.repo, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, user.Username, contactID); err != nil {
		return nil, fmt.Errorf("failed to delete contact in repo: %w", err)
	}

	resp := model.ToContactResponse(contact)
	return &resp, nil
}

// Search returns one page of the user's contacts plus paging metadata
func (s *contactService) Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	if user == nil {
		return nil, nil, ErrUnauthorized
	}
	s.logger.Debug("search contacts", zap.String("username", user.Username), zap.Int("page", req.Page), zap.Int("size", req.Size))
	if err := validation.Validate(req); err != nil {
		return nil, nil, err
	}

	contacts, err := s.repo.Search(ctx, user.Username, req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search contacts in repo: %w", err)
	}
	total, err := s.repo.Count(ctx, user.Username, req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count contacts in repo: %w", err)
	}

	data := make([]model.ContactResponse, 0, len(contacts))
	for i := range contacts {
		data = append(data, model.ToContactResponse(&contacts[i]))
	}

	return data, &model.Paging{
		CurrentPage: req.Page,
		Size:        req.Size,
		TotalPage:   model.TotalPages(total, req.Size),
	}, nil
}
