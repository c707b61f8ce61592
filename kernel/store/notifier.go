package store

import "github.com/michaelquigley/pfxlog"

// LogNotifier reports critical notices through the kernel logger. It is the
// default sink when the host does not supply one.
type LogNotifier struct{}

func (LogNotifier) Critical(title, text string) {
	pfxlog.Logger().Errorf("%s: %s", title, text)
}
