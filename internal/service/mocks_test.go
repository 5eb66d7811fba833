package service

import (
	"context"

	"contact_manager/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *mockUserRepo) CountByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) SetToken(ctx context.Context, username string, token *string) error {
	return m.Called(ctx, username, token).Error(0)
}

type mockContactRepo struct{ mock.Mock }

func (m *mockContactRepo) Create(ctx context.Context, c *model.Contact) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = 1
	}
	return args.Error(0)
}

func (m *mockContactRepo) FindByOwner(ctx context.Context, username string, id int64) (*model.Contact, error) {
	args := m.Called(ctx, username, id)
	c, _ := args.Get(0).(*model.Contact)
	return c, args.Error(1)
}

func (m *mockContactRepo) Update(ctx context.Context, c *model.Contact) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContactRepo) Delete(ctx context.Context, username string, id int64) error {
	return m.Called(ctx, username, id).Error(0)
}

func (m *mockContactRepo) Search(ctx context.Context, username string, f model.SearchContactRequest) ([]model.Contact, error) {
	args := m.Called(ctx, username, f)
	c, _ := args.Get(0).([]model.Contact)
	return c, args.Error(1)
}

func (m *mockContactRepo) Count(ctx context.Context, username string, f model.SearchContactRequest) (int64, error) {
	args := m.Called(ctx, username, f)
	return args.Get(0).(int64), args.Error(1)
}

type mockAddressRepo struct{ mock.Mock }

func (m *mockAddressRepo) Create(ctx context.Context, a *model.Address) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = 1
	}
	return args.Error(0)
}

func (m *mockAddressRepo) FindByContact(ctx context.Context, contactID, id int64) (*model.Address, error) {
	args := m.Called(ctx, contactID, id)
	a, _ := args.Get(0).(*model.Address)
	return a, args.Error(1)
}

func (m *mockAddressRepo) ListByContact(ctx context.Context, contactID int64) ([]model.Address, error) {
	args := m.Called(ctx, contactID)
	a, _ := args.Get(0).([]model.Address)
	return a, args.Error(1)
}

func (m *mockAddressRepo) Update(ctx context.Context, a *model.Address) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAddressRepo) Delete(ctx context.Context, contactID, id int64) error {
	return m.Called(ctx, contactID, id).Error(0)
}

type mockSampleUserRepo struct{ mock.Mock }

func (m *mockSampleUserRepo) Save(ctx context.Context, firstName string, lastName *string) (*model.SampleUser, error) {
	args := m.Called(ctx, firstName, lastName)
	u, _ := args.Get(0).(*model.SampleUser)
	return u, args.Error(1)
}

func (m *mockSampleUserRepo) FindByToken(ctx context.Context, token string) (*model.SampleUser, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*model.SampleUser)
	return u, args.Error(1)
}

func strPtr(s string) *string { return &s }
