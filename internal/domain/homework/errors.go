// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap one of these with %w, so callers
// dispatch with errors.Is instead of matching message text.
var (
	ErrAPI           = fmt.Errorf("api error")
	ErrTypeMismatch  = fmt.Errorf("type mismatch")
	ErrMissingField  = fmt.Errorf("missing field")
	ErrUnknownStatus = fmt.Errorf("unknown status")
)

var kinds = []error{ErrAPI, ErrTypeMismatch, ErrMissingField, ErrUnknownStatus}

// KindOf returns the error kind err wraps, or nil if it wraps none of them.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
