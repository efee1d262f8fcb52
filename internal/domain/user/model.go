package user

// Profile — единственный локальный пользователь дневника.
// PIN хранится открытым текстом: это замок от случайного взгляда, а не граница безопасности.
type Profile struct {
	Name string `json:"name" yaml:"name"`
	Pin  string `json:"pin" yaml:"pin"`
}
