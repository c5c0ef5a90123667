package pipeline

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("pipeline."+method, sentinel, format, args...)
}
