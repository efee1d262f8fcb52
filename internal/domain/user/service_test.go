package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) (*Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, profile Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPinValidator(), slog.Default())

	mockRepo.On("Load", mock.Anything).Return(nil, nil)
	mockRepo.On("Save", mock.Anything, Profile{Name: "Anna", Pin: "1234"}).Return(nil)

	profile, err := service.Register(context.Background(), "  Anna ", "1234")
	require.NoError(t, err)
	assert.Equal(t, "Anna", profile.Name)
	assert.Equal(t, "1234", profile.Pin)

	mockRepo.AssertExpectations(t)
}

func TestService_Register_AlreadyRegistered(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPinValidator(), slog.Default())

	mockRepo.On("Load", mock.Anything).Return(&Profile{Name: "Anna", Pin: "1234"}, nil)

	_, err := service.Register(context.Background(), "Bob", "4321")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Register_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, NewPinValidator(), slog.Default())

	mockRepo.On("Load", mock.Anything).Return(nil, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("user.Profile")).Return(errors.New("disk full"))

	_, err := service.Register(context.Background(), "Anna", "1234")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	mockRepo.AssertExpectations(t)
}

func TestService_Register_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		pin      string
	}{
		{name: "Empty name", userName: "", pin: "1234"},
		{name: "Blank name", userName: "   ", pin: "1234"},
		{name: "Short pin", userName: "Anna", pin: "123"},
		{name: "Long pin", userName: "Anna", pin: "12345"},
		{name: "Letters in pin", userName: "Anna", pin: "12a4"},
		{name: "Empty both", userName: "", pin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, NewPinValidator(), slog.Default())

			_, err := service.Register(context.Background(), tt.userName, tt.pin)
			assert.ErrorIs(t, err, ErrValidation)
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	service := NewService(new(MockRepository), NewPinValidator(), slog.Default())
	profile := Profile{Name: "Anna", Pin: "1234"}

	assert.NoError(t, service.Authenticate(profile, "1234"))
	assert.ErrorIs(t, service.Authenticate(profile, "0000"), ErrInvalidPin)
	assert.ErrorIs(t, service.Authenticate(profile, ""), ErrInvalidPin)
	assert.ErrorIs(t, service.Authenticate(profile, "1234 "), ErrInvalidPin)
}
