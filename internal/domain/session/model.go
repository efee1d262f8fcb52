package session

// Phase — экран, на котором находится пользователь.
type Phase string

const (
	PhaseWelcome   Phase = "welcome"
	PhaseRegister  Phase = "register"
	PhaseLogin     Phase = "login"
	PhaseDashboard Phase = "dashboard"
)

func (p Phase) String() string {
	return string(p)
}
