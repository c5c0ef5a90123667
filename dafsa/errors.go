package dafsa

import "github.com/dpseq/dafsa-privacy/event"

// wrapf wraps a sentinel error with the dafsa method name and context,
// following the builder package's sentinel+wrap convention: the sentinel
// survives errors.Is while the message records what was being built or
// walked when the failure occurred.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("dafsa."+method, sentinel, format, args...)
}
