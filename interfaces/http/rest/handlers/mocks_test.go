package handlers

import (
	"context"

	"muzac-backend/application/ports"
	"muzac-backend/domain/family"
	"muzac-backend/domain/preferences"

	"github.com/stretchr/testify/mock"
)

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockIdentityProvider) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *mockIdentityProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *mockIdentityProvider) ResendConfirmationCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockIdentityProvider) GetUser(ctx context.Context, accessToken string) (ports.User, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(ports.User), args.Error(1)
}

type mockFamilyRepository struct {
	mock.Mock
}

func (m *mockFamilyRepository) Create(ctx context.Context, member family.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockFamilyRepository) GetByID(ctx context.Context, id string) (family.Member, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(family.Member), args.Error(1)
}

func (m *mockFamilyRepository) GetAll(ctx context.Context) ([]family.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]family.Member), args.Error(1)
}

func (m *mockFamilyRepository) GetByMom(ctx context.Context, parentID string) ([]family.Member, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]family.Member), args.Error(1)
}

func (m *mockFamilyRepository) GetByDad(ctx context.Context, parentID string) ([]family.Member, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]family.Member), args.Error(1)
}

type mockPreferenceRepository struct {
	mock.Mock
}

func (m *mockPreferenceRepository) Get(ctx context.Context, userID string) (*preferences.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preferences.UserPreferences), args.Error(1)
}

func (m *mockPreferenceRepository) Put(ctx context.Context, prefs preferences.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}
