package comment

import (
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/errs"
)

const MaxTextLength = 1000

var (
	ErrEmptyText   = errs.NewKind(errs.ErrValidation, "comment cannot be empty")
	ErrTextTooLong = errs.NewKind(errs.ErrValidation, "comment exceeds maximum length")
)

type Text struct {
	text string
}

func NewText(s string) (Text, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text{}, ErrEmptyText
	}
	if utf8.RuneCountInString(t) > MaxTextLength {
		return Text{}, ErrTextTooLong
	}
	return Text{text: t}, nil
}

func (t Text) String() string { return t.text }
