package sampling

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("sampling."+method, sentinel, format, args...)
}
