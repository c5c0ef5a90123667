package annotate

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("annotate."+method, sentinel, format, args...)
}
