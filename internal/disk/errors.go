package disk

import (
	"errors"
	"fmt"
)

// ErrTruncatedInput reports that fewer bytes were available than a
// fixed-layout structure requires. Decoders never zero-fill missing bytes.
var ErrTruncatedInput = errors.New("truncated input")

func truncated(what string, want, got int) error {
	return fmt.Errorf("%w: %s requires %d bytes, got %d", ErrTruncatedInput, what, want, got)
}
