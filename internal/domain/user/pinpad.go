package user

// PinPad накапливает PIN по одной цифре, как экранная клавиатура.
// Zero value готов к использованию.
type PinPad struct {
	digits []byte
}

// Push добавляет цифру, если набрано меньше PinLength цифр.
func (p *PinPad) Push(d rune) bool {
	if d < '0' || d > '9' || len(p.digits) >= PinLength {
		return false
	}

	p.digits = append(p.digits, byte(d))
	return true
}

// Pop удаляет последнюю цифру.
func (p *PinPad) Pop() {
	if len(p.digits) > 0 {
		p.digits = p.digits[:len(p.digits)-1]
	}
}

func (p *PinPad) Clear() {
	p.digits = p.digits[:0]
}

func (p *PinPad) Len() int {
	return len(p.digits)
}

func (p *PinPad) Complete() bool {
	return len(p.digits) == PinLength
}

func (p *PinPad) String() string {
	return string(p.digits)
}

// Mask рисует набранные цифры точками: ●●○○
func (p *PinPad) Mask() string {
	mask := make([]rune, 0, PinLength)
	for i := 0; i < PinLength; i++ {
		if i < len(p.digits) {
			mask = append(mask, '●')
		} else {
			mask = append(mask, '○')
		}
	}
	return string(mask)
}
