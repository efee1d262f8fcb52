package note

import (
	"fmt"
	"strings"
)

// TitlePolicy определяет, откуда берётся заголовок записи.
type TitlePolicy string

const (
	// TitleExplicit требует заполненных заголовка и текста.
	TitleExplicit TitlePolicy = "explicit"
	// TitleDerived требует только текст; пустой заголовок берётся из первых слов текста.
	TitleDerived TitlePolicy = "derived"

	derivedTitleWords = 4
)

func ParseTitlePolicy(s string) (TitlePolicy, error) {
	switch TitlePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", TitleExplicit:
		return TitleExplicit, nil
	case TitleDerived:
		return TitleDerived, nil
	default:
		return "", fmt.Errorf("unknown title policy %q", s)
	}
}

// DeriveTitle возвращает первые четыре слова текста.
func DeriveTitle(content string) string {
	words := strings.Fields(content)
	if len(words) > derivedTitleWords {
		words = words[:derivedTitleWords]
	}
	return strings.Join(words, " ")
}

// apply проверяет черновик и возвращает итоговый заголовок.
func (p TitlePolicy) apply(d Draft) (string, error) {
	if strings.TrimSpace(d.Content) == "" {
		return "", fmt.Errorf("%w: content is empty", ErrValidation)
	}

	title := strings.TrimSpace(d.Title)
	if title != "" {
		return title, nil
	}

	if p == TitleDerived {
		return DeriveTitle(d.Content), nil
	}
	return "", fmt.Errorf("%w: title is empty", ErrValidation)
}
