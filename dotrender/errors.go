package dotrender

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("dotrender."+method, sentinel, format, args...)
}
