package reconstruct

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("reconstruct."+method, sentinel, format, args...)
}
