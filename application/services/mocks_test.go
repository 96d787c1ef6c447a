package services

import (
	"context"
	"time"

	"muzac-backend/application/ports"
	"muzac-backend/domain/family"
	"muzac-backend/domain/preferences"

	"github.com/stretchr/testify/mock"
)

type MockFamilyRepository struct {
	mock.Mock
}

func (m *MockFamilyRepository) Create(ctx context.Context, member family.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockFamilyRepository) GetByID(ctx context.Context, id string) (family.Member, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(family.Member), args.Error(1)
}

func (m *MockFamilyRepository) GetAll(ctx context.Context) ([]family.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]family.Member), args.Error(1)
}

func (m *MockFamilyRepository) GetByMom(ctx context.Context, parentID string) ([]family.Member, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]family.Member), args.Error(1)
}

func (m *MockFamilyRepository) GetByDad(ctx context.Context, parentID string) ([]family.Member, error) {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]family.Member), args.Error(1)
}

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(ctx context.Context, userID string) (*preferences.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*preferences.UserPreferences), args.Error(1)
}

func (m *MockPreferenceRepository) Put(ctx context.Context, prefs preferences.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockIdentityProvider) ConfirmSignUp(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockIdentityProvider) ResendConfirmationCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, accessToken string) (ports.User, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(ports.User), args.Error(1)
}

type MockVideoRenderer struct {
	mock.Mock
}

func (m *MockVideoRenderer) StartRender(ctx context.Context, spec ports.RenderSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockVideoRenderer) Progress(ctx context.Context, renderID string) (ports.RenderProgress, error) {
	args := m.Called(ctx, renderID)
	return args.Get(0).(ports.RenderProgress), args.Error(1)
}

// fakeObjectStore is an in-memory object store: enough to observe overwrite
// and listing behavior without S3.
type fakeObjectStore struct {
	objects map[string][]byte
	putErr  error
	listErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = data
	return nil
}

func (f *fakeObjectStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var keys []string
	for k := range f.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (f *fakeObjectStore) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return "https://signed.example.com/" + key, nil
}

// nopMetrics discards all counters.
type nopMetrics struct{}

func (nopMetrics) Increment(ctx context.Context, name string) {}
