package handler

import (
	"context"

	"contact_manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*model.UserResponse)
	return r, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, req model.LoginUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*model.UserResponse)
	return r, args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, user *model.User) (*model.UserResponse, error) {
	args := m.Called(ctx, user)
	r, _ := args.Get(0).(*model.UserResponse)
	return r, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, user, req)
	r, _ := args.Get(0).(*model.UserResponse)
	return r, args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockContactService struct{ mock.Mock }

func (m *mockContactService) Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, req)
	r, _ := args.Get(0).(*model.ContactResponse)
	return r, args.Error(1)
}

func (m *mockContactService) Get(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, contactID)
	r, _ := args.Get(0).(*model.ContactResponse)
	return r, args.Error(1)
}

func (m *mockContactService) Update(ctx context.Context, user *model.User, req model.UpdateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, req)
	r, _ := args.Get(0).(*model.ContactResponse)
	return r, args.Error(1)
}

func (m *mockContactService) Remove(ctx context.Context, user *model.User, contactID int64) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, contactID)
	r, _ := args.Get(0).(*model.ContactResponse)
	return r, args.Error(1)
}

func (m *mockContactService) Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.Paging, error) {
	args := m.Called(ctx, user, req)
	data, _ := args.Get(0).([]model.ContactResponse)
	paging, _ := args.Get(1).(*model.Paging)
	return data, paging, args.Error(2)
}

type mockAddressService struct{ mock.Mock }

func (m *mockAddressService) Create(ctx context.Context, user *model.User, req model.CreateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, req)
	r, _ := args.Get(0).(*model.AddressResponse)
	return r, args.Error(1)
}

func (m *mockAddressService) Get(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, ref)
	r, _ := args.Get(0).(*model.AddressResponse)
	return r, args.Error(1)
}

func (m *mockAddressService) Update(ctx context.Context, user *model.User, req model.UpdateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, req)
	r, _ := args.Get(0).(*model.AddressResponse)
	return r, args.Error(1)
}

func (m *mockAddressService) Remove(ctx context.Context, user *model.User, ref model.AddressRef) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, ref)
	r, _ := args.Get(0).(*model.AddressResponse)
	return r, args.Error(1)
}

func (m *mockAddressService) List(ctx context.Context, user *model.User, contactID int64) ([]model.AddressResponse, error) {
	args := m.Called(ctx, user, contactID)
	r, _ := args.Get(0).([]model.AddressResponse)
	return r, args.Error(1)
}

type mockSampleService struct{ mock.Mock }

func (m *mockSampleService) SayHello(name string) string {
	return m.Called(name).String(0)
}

func (m *mockSampleService) Greet(user *model.SampleUser) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *mockSampleService) Create(ctx context.Context, firstName, lastName string) (*model.SampleUser, error) {
	args := m.Called(ctx, firstName, lastName)
	u, _ := args.Get(0).(*model.SampleUser)
	return u, args.Error(1)
}

func strPtr(s string) *string { return &s }
