package event

import "fmt"

// errorf wraps a sentinel error with a stage/method prefix and formatted
// context, following the builder package's wrapping convention: the
// sentinel survives errors.Is while the message carries the CaseID/group
// that was under processing.
func errorf(stage string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", stage, fmt.Sprintf(format, args...), sentinel)
}

// Errorf is the exported form, used by every downstream package so all
// stage errors share one wrapping shape.
func Errorf(stage string, sentinel error, format string, args ...interface{}) error {
	return errorf(stage, sentinel, format, args...)
}
