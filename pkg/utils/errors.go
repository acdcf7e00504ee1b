package utils

import (
	"fmt"
)

// MakeError wraps a sentinel error with a formatted detail message, keeping
// the sentinel matchable via errors.Is/errors.As.
func MakeError(err error, detailsBody string, args ...any) error {
	return fmt.Errorf("%w: "+detailsBody, append([]any{err}, args...)...)
}
