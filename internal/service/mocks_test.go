package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) FindByUsername(ctx context.Context, username string) (*domain.CredentialRecord, error) {
	args := m.Called(ctx, username)
	record, _ := args.Get(0).(*domain.CredentialRecord)
	return record, args.Error(1)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *mockCustomerRepo) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) FindByUsername(ctx context.Context, username string) (*domain.CredentialRecord, error) {
	args := m.Called(ctx, username)
	record, _ := args.Get(0).(*domain.CredentialRecord)
	return record, args.Error(1)
}

func (m *mockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
