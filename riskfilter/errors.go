package riskfilter

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("riskfilter."+method, sentinel, format, args...)
}
