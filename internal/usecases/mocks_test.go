package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"nika-sop.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Activate(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Mock SOPRepository
type MockSOPRepository struct {
	mock.Mock
}

func (m *MockSOPRepository) Create(ctx context.Context, sop *entities.SOP) error {
	args := m.Called(ctx, sop)
	return args.Error(0)
}

func (m *MockSOPRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSOPRepository) ListByEmail(ctx context.Context, email string) ([]*entities.SOP, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SOP), args.Error(1)
}

// Mock LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// Mock mailer.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendActivation(ctx context.Context, to, activationLink string) error {
	args := m.Called(ctx, to, activationLink)
	return args.Error(0)
}

func (m *MockSender) SendSOP(ctx context.Context, to, subject, body string, attachment []byte) error {
	args := m.Called(ctx, to, subject, body, attachment)
	return args.Error(0)
}

// Mock TextGenerator. Prompts records what the usecase sent to the provider.
type MockGenerator struct {
	mock.Mock
	Prompts []string
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
