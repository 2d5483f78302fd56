package funcspace

import (
	"errors"
	"fmt"
)

var (
	// ErrSVDFailed is returned when the factorization of the sample matrix
	// does not converge.
	ErrSVDFailed = errors.New("funcspace: svd factorization failed")

	// ErrInvalidSnapshot is returned when a snapshot's fields are missing
	// or mutually inconsistent.
	ErrInvalidSnapshot = errors.New("funcspace: invalid snapshot")
)

// ErrBasisOutOfRange indicates a basis truncation request outside the range
// of available singular vectors.
type ErrBasisOutOfRange struct {
	Requested int
	Available int
}

func (e *ErrBasisOutOfRange) Error() string {
	return fmt.Sprintf("funcspace: basis count %d out of range [1, %d]", e.Requested, e.Available)
}
