package user

import (
	"strings"
)

const PinLength = 4

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(name, pin string) error
	ValidateName(name string) error
	ValidatePin(pin string) error
}

type PinValidator struct {
	pinLength int
}

// NewPinValidator создает валидатор для 4-значного PIN-кода
func NewPinValidator() *PinValidator {
	return &PinValidator{pinLength: PinLength}
}

// ValidateRegister валидирует данные для регистрации
func (v *PinValidator) ValidateRegister(name, pin string) error {
	if err := v.ValidateName(name); err != nil {
		return err
	}

	return v.ValidatePin(pin)
}

// ValidateName валидирует имя
func (v *PinValidator) ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validationError("empty_name", "name must not be empty")
	}

	return nil
}

// ValidatePin валидирует PIN: ровно pinLength цифр ASCII
func (v *PinValidator) ValidatePin(pin string) error {
	if len(pin) != v.pinLength {
		return validationError("pin_length", "pin must contain exactly 4 digits")
	}

	for i := 0; i < len(pin); i++ {
		if !isDigit(pin[i]) {
			return validationError("pin_digits", "pin must contain digits only")
		}
	}

	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
