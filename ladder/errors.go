package ladder

import (
	"errors"
	"fmt"
)

// ErrUsage is the root of every caller-side precondition violation.
// Test with errors.Is(err, ErrUsage).
var ErrUsage = errors.New("ladder: usage error")

var (
	// ErrEmptyWord indicates the start or end word is empty.
	ErrEmptyWord = fmt.Errorf("%w: word is empty", ErrUsage)

	// ErrLengthMismatch indicates start and end words differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: words not the same length", ErrUsage)
)
