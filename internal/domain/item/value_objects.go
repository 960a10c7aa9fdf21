package item

import (
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/errs"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
)

var (
	ErrEmptyName          = errs.NewKind(errs.ErrValidation, "item name must not be blank")
	ErrNameTooLong        = errs.NewKind(errs.ErrValidation, "item name exceeds maximum length")
	ErrEmptyDescription   = errs.NewKind(errs.ErrValidation, "item description must not be blank")
	ErrDescriptionTooLong = errs.NewKind(errs.ErrValidation, "item description exceeds maximum length")
)

func normalizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return s, nil
}

func normalizeDescription(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDescription
	}
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return s, nil
}
