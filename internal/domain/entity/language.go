package entity

import (
	"fmt"
	"strings"
)

// LanguagePair пара языковых тегов модели перевода (формат mBART-50, например en_XX).
type LanguagePair struct {
	Source string
	Target string
}

// DefaultLanguagePair английский → арабский
var DefaultLanguagePair = LanguagePair{Source: "en_XX", Target: "ar_AR"}

// Validate проверяет, что оба тега заданы и различаются.
func (p LanguagePair) Validate() error {
	if strings.TrimSpace(p.Source) == "" || strings.TrimSpace(p.Target) == "" {
		return fmt.Errorf("%w: source and target tags are required", ErrUnsupportedLanguage)
	}
	if p.Source == p.Target {
		return fmt.Errorf("%w: source and target are both %q", ErrUnsupportedLanguage, p.Source)
	}
	return nil
}

func (p LanguagePair) String() string {
	return p.Source + "->" + p.Target
}
