package service

import (
	"context"
	"fmt"

	"contact_manager/internal/model"
	"contact_manager/internal/repository"
	"contact_manager/internal/validation"

	"go.uber.org/zap"
)

// AddressService defines operations for addresses nested under a contact.
// Each operation walks the ownership chain user -> contact -> address.
type AddressService interface {
	Create(ctx context.Context, user *model.User, req model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error)
	Update(ctx context.Context, user *model.User, req model.UpdateAddressRequest) (*model.AddressResponse, error)
	Remove(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error)
	List(ctx context.Context, user *model.User, contactID int64) ([]model.AddressResponse, error)
}

type addressService struct {
	repo        repository.AddressRepository
	contactRepo repository.ContactRepository
	logger      *zap.Logger
}

// NewAddressService creates a new AddressService
func NewAddressService(repo repository.AddressRepository, contactRepo repository.ContactRepository, logger *zap.Logger) AddressService {
	return &addressService{repo: repo, contactRepo: contactRepo, logger: logger}
}

func (s *addressService) findOwnedAddress(ctx context.Context, user *model.User, contactID, addressID int64) (*model.Address, error) {
	if _, err := findOwnedContact(ctx, s.contactRepo, user.Username, contactID); err != nil {
		return nil, err
	}
	address, err := s.repo.FindByContact(ctx, contactID, addressID)
	if err != nil {
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

func (s *addressService) Create(ctx context.Context, user *model.User, req model.CreateAddressRequest) (*model.AddressResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("create address", zap.String("username", user.Username), zap.Int64("contact_id", req.ContactID))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	if _, err := findOwnedContact(ctx, s.contactRepo, user.Username, req.ContactID); err != nil {
		return nil, err
	}

	address := &model.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.repo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address in repo: %w", err)
	}

	resp := model.ToAddressResponse(address)
	return &resp, nil
}

func (s *addressService) Get(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	if err := validation.Validate(ref); err != nil {
		return nil, err
	}

	address, err := s.findOwnedAddress(ctx, user, ref.ContactID, ref.AddressID)
	if err != nil {
		return nil, err
	}
	resp := model.ToAddressResponse(address)
	return &resp, nil
}

func (s *addressService) Update(ctx context.Context, user *model.User, req model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("update address", zap.String("username", user.Username), zap.Int64("contact_id", req.ContactID), zap.Int64("address_id", req.ID))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	address, err := s.findOwnedAddress(ctx, user, req.ContactID, req.ID)
	if err != nil {
		return nil, err
	}

	// omitted optional fields keep their stored value
	if req.Street != nil {
		address.Street = req.Street
	}
	if req.City != nil {
		address.City = req.City
	}
	if req.Province != nil {
		address.Province = req.Province
	}
	address.Country = req.Country
	address.PostalCode = req.PostalCode
	if err := s.repo.Update(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to update address in repo: %w", err)
	}

	resp := model.ToAddressResponse(address)
	return &resp, nil
}

func (s *addressService) Remove(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	s.logger.Debug("remove address", zap.String("username", user.Username), zap.Int64("contact_id", ref.ContactID), zap.Int64("address_id", ref.AddressID))
	if err := validation.Validate(ref); err != nil {
		return nil, err
	}

	address, err := s.findOwnedAddress(ctx, user, ref.ContactID, ref.AddressID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, ref.ContactID, ref.AddressID); err != nil {
		return nil, fmt.Errorf("failed to delete address in repo: %w", err)
	}

	resp := model.ToAddressResponse(address)
	return &resp, nil
}

func (s *addressService) List(ctx context.Context, user *model.User, contactID int64) ([]model.AddressResponse, error) {
	if user == nil {
		return nil, ErrUnauthorized
	}
	if _, err := findOwnedContact(ctx, s.contactRepo, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.repo.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses in repo: %w", err)
	}

	data := make([]model.AddressResponse, 0, len(addresses))
	for i := range addresses {
		data = append(data, model.ToAddressResponse(&addresses[i]))
	}
	return data, nil
}
