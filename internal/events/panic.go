package events

import "fmt"

// panicToError converts a recovered panic value into an error, so handler
// panics are caught by the same path as ordinary handler errors.
func panicToError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("event handler panicked: %w", err)
	}
	return fmt.Errorf("event handler panicked: %v", r)
}
