package note

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Load(ctx context.Context) ([]Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Note), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, notes []Note) error {
	args := m.Called(ctx, notes)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("note-%d", n), nil
	}
}

func newTestService(repo Repository, opts ...Option) *Service {
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs()),
	}, opts...)
	return NewService(repo, slog.Default(), opts...)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Save", mock.Anything, []Note{{
		ID:      "note-1",
		Date:    fixedNow,
		Title:   "Day one",
		Content: "Hello",
	}}).Return(nil)

	n, err := service.Create(context.Background(), Draft{Title: "  Day one ", Content: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "note-1", n.ID)
	assert.Equal(t, "Day one", n.Title)
	assert.Equal(t, fixedNow, n.Date)
	assert.Equal(t, 1, service.Len())

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{name: "empty title", draft: Draft{Title: "", Content: "Hello"}},
		{name: "blank title", draft: Draft{Title: "   ", Content: "Hello"}},
		{name: "empty content", draft: Draft{Title: "Day one", Content: ""}},
		{name: "blank content", draft: Draft{Title: "Day one", Content: "\n\t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Create(context.Background(), tt.draft)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, service.Len())
			mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Create_DerivedTitle(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, WithTitlePolicy(TitleDerived))
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	n, err := service.Create(context.Background(), Draft{Content: "Today I walked in the park with friends"})
	require.NoError(t, err)
	assert.Equal(t, "Today I walked in", n.Title)

	n, err = service.Create(context.Background(), Draft{Title: "Mine", Content: "Short"})
	require.NoError(t, err)
	assert.Equal(t, "Mine", n.Title)

	_, err = service.Create(context.Background(), Draft{Title: "Only title"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := service.Create(context.Background(), Draft{Title: "Day one", Content: "Hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Zero(t, service.Len(), "failed save leaves memory untouched")
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), Draft{Title: "Day one", Content: "Hello", Image: "data:image/png;base64,AA=="})
	require.NoError(t, err)

	updated, applied, err := service.Update(context.Background(), created.ID, Draft{Title: "Day 1", Content: "Hello again"})
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Date, updated.Date)
	assert.Equal(t, "Day 1", updated.Title)
	assert.Equal(t, "Hello again", updated.Content)
	assert.Empty(t, updated.Image, "image follows the draft")

	got, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestService_Update_Ignored(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), Draft{Title: "Day one", Content: "Hello"})
	require.NoError(t, err)

	_, applied, err := service.Update(context.Background(), "missing", Draft{Title: "x", Content: "y"})
	require.NoError(t, err)
	assert.False(t, applied)

	_, applied, err = service.Update(context.Background(), created.ID, Draft{Title: "", Content: "y"})
	require.NoError(t, err)
	assert.False(t, applied)

	got, err := service.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	mockRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestService_CreateDeleteRoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	_, err := service.Create(context.Background(), Draft{Title: "First", Content: "a"})
	require.NoError(t, err)
	before := service.List()

	created, err := service.Create(context.Background(), Draft{Title: "Second", Content: "b"})
	require.NoError(t, err)

	removed, err := service.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, before, service.List())

	removed, err = service.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, removed, "delete is idempotent")
	assert.Equal(t, before, service.List())
}

func TestService_LoadAndReplace(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	stored := []Note{{ID: "a", Title: "A", Content: "a", Date: fixedNow}}
	mockRepo.On("Load", mock.Anything).Return(stored, nil)
	require.NoError(t, service.Load(context.Background()))
	assert.Equal(t, stored, service.List())

	replacement := []Note{{ID: "b", Title: "B", Content: "b", Date: fixedNow}}
	mockRepo.On("Save", mock.Anything, replacement).Return(nil)
	require.NoError(t, service.Replace(context.Background(), replacement))
	assert.Equal(t, replacement, service.List())

	mockRepo.On("Save", mock.Anything, []Note{}).Return(nil)
	require.NoError(t, service.Replace(context.Background(), nil))
	assert.Zero(t, service.Len())
}

func TestService_Find(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)
	mockRepo.On("Load", mock.Anything).Return([]Note{
		{ID: "0191-aaaa", Title: "A", Content: "a"},
		{ID: "0191-abbb", Title: "B", Content: "b"},
	}, nil)
	require.NoError(t, service.Load(context.Background()))

	n, err := service.Find("0191-ab")
	require.NoError(t, err)
	assert.Equal(t, "B", n.Title)

	n, err = service.Find("aaa")
	require.NoError(t, err)
	assert.Equal(t, "A", n.Title)

	_, err = service.Find("0191-a")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = service.Find("zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DefaultIDsAreUnique(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())
	mockRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n, err := service.Create(context.Background(), Draft{Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}
