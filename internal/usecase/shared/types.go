package shared

import (
	"math"

	"shareit/internal/pkg/errs"
)

const DefaultPageSize = 10

var ErrInvalidPage = errs.NewKind(errs.ErrValidation, "from must be >= 0 and size must be > 0, both at most 2147483647")

// Page is a limit/offset window. from is converted to the index of the page
// containing it, so from=7,size=5 yields the second page (offset 5).
type Page struct {
	Limit  int32
	Offset int32
}

func NewPage(from, size int) (Page, error) {
	if from < 0 || size <= 0 || from > math.MaxInt32 || size > math.MaxInt32 {
		return Page{}, ErrInvalidPage
	}
	page := from / size
	return Page{Limit: int32(size), Offset: int32(page * size)}, nil
}
