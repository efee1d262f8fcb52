package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"diarykeeper/internal/domain/user"
)

// Flow ведёт пользователя по экранам welcome → register|login → dashboard.
type Flow struct {
	users user.Servicer
	log   *slog.Logger

	mu       sync.Mutex
	phase    Phase
	profile  *user.Profile
	name     string
	pin      user.PinPad
	loginPin user.PinPad
}

func NewFlow(users user.Servicer, log *slog.Logger) *Flow {
	return &Flow{
		users: users,
		log:   log,
		phase: PhaseWelcome,
	}
}

// Load читает сохранённый профиль. Вызывается один раз при старте.
func (f *Flow) Load(ctx context.Context) error {
	profile, err := f.users.Load(ctx)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.profile = profile
	f.mu.Unlock()

	return nil
}

// Welcome выдерживает паузу приветствия и переходит к регистрации
// или ко входу, в зависимости от наличия профиля.
func (f *Flow) Welcome(ctx context.Context, dwell time.Duration) (Phase, error) {
	if phase := f.Phase(); phase != PhaseWelcome {
		return phase, ErrWrongPhase
	}

	if dwell > 0 {
		timer := time.NewTimer(dwell)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return PhaseWelcome, ctx.Err()
		case <-timer.C:
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile == nil {
		f.phase = PhaseRegister
	} else {
		f.phase = PhaseLogin
	}
	f.log.Debug("welcome finished", "phase", f.phase)

	return f.phase, nil
}

func (f *Flow) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Flow) Profile() (user.Profile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.profile == nil {
		return user.Profile{}, false
	}
	return *f.profile, true
}

func (f *Flow) Registered() bool {
	_, ok := f.Profile()
	return ok
}

// SetName запоминает введённое имя на экране регистрации.
func (f *Flow) SetName(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseRegister {
		return ErrWrongPhase
	}
	f.name = name
	return nil
}

func (f *Flow) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

// PressDigit добавляет цифру в PIN текущего экрана.
func (f *Flow) PressDigit(d rune) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pad, err := f.activePad()
	if err != nil {
		return false, err
	}
	return pad.Push(d), nil
}

// DeleteDigit стирает последнюю цифру PIN текущего экрана.
func (f *Flow) DeleteDigit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	pad, err := f.activePad()
	if err != nil {
		return err
	}
	pad.Pop()
	return nil
}

func (f *Flow) PinMask() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	pad, err := f.activePad()
	if err != nil {
		return ""
	}
	return pad.Mask()
}

// EnterPin набирает строку посимвольно: цифры добавляются, '<' стирает.
// Прочие символы игнорируются.
func (f *Flow) EnterPin(input string) error {
	for _, r := range input {
		if r == '<' {
			if err := f.DeleteDigit(); err != nil {
				return err
			}
			continue
		}
		if _, err := f.PressDigit(r); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) activePad() (*user.PinPad, error) {
	switch f.phase {
	case PhaseRegister:
		return &f.pin, nil
	case PhaseLogin:
		return &f.loginPin, nil
	default:
		return nil, ErrWrongPhase
	}
}

// Register создаёт профиль из набранных имени и PIN.
// При ошибке валидации экран не меняется, PIN сбрасывается, имя остаётся.
func (f *Flow) Register(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseRegister {
		return ErrWrongPhase
	}

	profile, err := f.users.Register(ctx, f.name, f.pin.String())
	if err != nil {
		if errors.Is(err, user.ErrValidation) {
			f.pin.Clear()
		}
		return err
	}

	f.profile = &profile
	f.pin.Clear()
	f.name = ""
	f.phase = PhaseDashboard
	f.log.Debug("registered", "name", profile.Name)

	return nil
}

// Login сверяет набранный PIN с сохранённым. PIN сбрасывается в любом случае.
func (f *Flow) Login() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseLogin {
		return ErrWrongPhase
	}
	if f.profile == nil {
		return user.ErrNotRegistered
	}

	pin := f.loginPin.String()
	f.loginPin.Clear()

	if err := f.users.Authenticate(*f.profile, pin); err != nil {
		f.log.Debug("login rejected")
		return err
	}

	f.phase = PhaseDashboard
	return nil
}

func (f *Flow) Logout() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase != PhaseDashboard {
		return ErrWrongPhase
	}

	f.loginPin.Clear()
	f.phase = PhaseLogin
	return nil
}

// RequireDashboard пропускает только разблокированную сессию.
func (f *Flow) RequireDashboard() error {
	if phase := f.Phase(); phase != PhaseDashboard {
		return fmt.Errorf("%w: current phase is %s", ErrLocked, phase)
	}
	return nil
}
