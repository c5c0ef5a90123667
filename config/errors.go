package config

import "github.com/dpseq/dafsa-privacy/event"

func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return event.Errorf("config."+method, sentinel, format, args...)
}
