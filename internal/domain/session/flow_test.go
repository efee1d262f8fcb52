package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"diarykeeper/internal/domain/user"
)

type profileRepo struct {
	profile *user.Profile
	saves   int
}

func (r *profileRepo) Load(_ context.Context) (*user.Profile, error) {
	if r.profile == nil {
		return nil, nil
	}
	p := *r.profile
	return &p, nil
}

func (r *profileRepo) Save(_ context.Context, profile user.Profile) error {
	r.profile = &profile
	r.saves++
	return nil
}

func newFlow(t *testing.T, repo *profileRepo) *Flow {
	t.Helper()

	users := user.NewService(repo, user.NewPinValidator(), slog.Default())
	flow := NewFlow(users, slog.Default())
	require.NoError(t, flow.Load(context.Background()))
	return flow
}

func TestFlow_WelcomeRoutes(t *testing.T) {
	t.Run("no profile goes to register", func(t *testing.T) {
		flow := newFlow(t, &profileRepo{})
		assert.Equal(t, PhaseWelcome, flow.Phase())

		phase, err := flow.Welcome(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, PhaseRegister, phase)
	})

	t.Run("stored profile goes to login", func(t *testing.T) {
		flow := newFlow(t, &profileRepo{profile: &user.Profile{Name: "Anna", Pin: "1234"}})

		phase, err := flow.Welcome(context.Background(), time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, PhaseLogin, phase)
	})

	t.Run("cancelled dwell stays on welcome", func(t *testing.T) {
		flow := newFlow(t, &profileRepo{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		phase, err := flow.Welcome(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, PhaseWelcome, phase)
	})

	t.Run("welcome only once", func(t *testing.T) {
		flow := newFlow(t, &profileRepo{})
		_, err := flow.Welcome(context.Background(), 0)
		require.NoError(t, err)

		_, err = flow.Welcome(context.Background(), 0)
		assert.ErrorIs(t, err, ErrWrongPhase)
	})
}

func TestFlow_RegisterThenLogin(t *testing.T) {
	repo := &profileRepo{}
	flow := newFlow(t, repo)
	_, err := flow.Welcome(context.Background(), 0)
	require.NoError(t, err)

	require.NoError(t, flow.SetName("Anna"))
	require.NoError(t, flow.EnterPin("1234"))
	assert.Equal(t, "●●●●", flow.PinMask())
	require.NoError(t, flow.Register(context.Background()))

	assert.Equal(t, PhaseDashboard, flow.Phase())
	assert.NoError(t, flow.RequireDashboard())
	assert.Equal(t, 1, repo.saves)

	require.NoError(t, flow.Logout())
	assert.Equal(t, PhaseLogin, flow.Phase())
	assert.ErrorIs(t, flow.RequireDashboard(), ErrLocked)

	require.NoError(t, flow.EnterPin("0000"))
	assert.ErrorIs(t, flow.Login(), user.ErrInvalidPin)
	assert.Equal(t, PhaseLogin, flow.Phase())
	assert.Equal(t, "○○○○", flow.PinMask(), "pin is cleared after a failed attempt")

	require.NoError(t, flow.EnterPin("1234"))
	require.NoError(t, flow.Login())
	assert.Equal(t, PhaseDashboard, flow.Phase())

	profile, ok := flow.Profile()
	require.True(t, ok)
	assert.Equal(t, user.Profile{Name: "Anna", Pin: "1234"}, profile)
}

func TestFlow_RegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		uname string
		pin   string
	}{
		{name: "blank name", uname: "   ", pin: "1234"},
		{name: "incomplete pin", uname: "Anna", pin: "12"},
		{name: "nothing entered", uname: "", pin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &profileRepo{}
			flow := newFlow(t, repo)
			_, err := flow.Welcome(context.Background(), 0)
			require.NoError(t, err)

			require.NoError(t, flow.SetName(tt.uname))
			require.NoError(t, flow.EnterPin(tt.pin))

			err = flow.Register(context.Background())
			assert.ErrorIs(t, err, user.ErrValidation)
			assert.Equal(t, PhaseRegister, flow.Phase())
			assert.Equal(t, tt.uname, flow.Name(), "name is kept for correction")
			assert.Equal(t, "○○○○", flow.PinMask())
			assert.Zero(t, repo.saves)
		})
	}
}

func TestFlow_PinPadEditing(t *testing.T) {
	flow := newFlow(t, &profileRepo{profile: &user.Profile{Name: "Anna", Pin: "1234"}})
	_, err := flow.Welcome(context.Background(), 0)
	require.NoError(t, err)

	require.NoError(t, flow.EnterPin("129<34"))
	require.NoError(t, flow.Login())
	assert.Equal(t, PhaseDashboard, flow.Phase())
}

func TestFlow_WrongPhase(t *testing.T) {
	flow := newFlow(t, &profileRepo{})

	_, err := flow.PressDigit('1')
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.ErrorIs(t, flow.SetName("Anna"), ErrWrongPhase)
	assert.ErrorIs(t, flow.Login(), ErrWrongPhase)
	assert.ErrorIs(t, flow.Logout(), ErrWrongPhase)
	assert.ErrorIs(t, flow.Register(context.Background()), ErrWrongPhase)
	assert.ErrorIs(t, flow.RequireDashboard(), ErrLocked)
}
