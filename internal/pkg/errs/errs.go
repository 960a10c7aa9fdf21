package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is also matches errors marked with reference via Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// NewKind creates an error carrying msg and marked as kind.
func NewKind(kind error, msg string) error {
	return cr.Mark(cr.New(msg), kind)
}

// Message returns the innermost message, without wrap prefixes.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return cr.UnwrapAll(err).Error()
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
