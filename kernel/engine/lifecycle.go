package engine

import (
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/chunga-ict/retained/kernel/store"
	"github.com/michaelquigley/pfxlog"
)

// Lifecycle is the observer the host integration layer drives. The store
// never registers itself with the window manager; the host calls these from
// its own signal handlers.
type Lifecycle struct {
	Store  store.StateStore
	Lister model.ScreenLister
}

func NewLifecycle(s store.StateStore, lister model.ScreenLister) *Lifecycle {
	return &Lifecycle{Store: s, Lister: lister}
}

// ScreenRemoved snapshots the departing screen. Store errors are absorbed
// here; nothing propagates back into host callback code.
func (l *Lifecycle) ScreenRemoved(screen model.Screen) {
	if err := l.Store.Save(screen); err != nil {
		pfxlog.Logger().WithError(err).Warn("unable to save state for removed screen")
	}
}

// ScreenAdded is intentionally a no-op: a newly added screen keeps whatever
// tags the host creates for it until it is removed or the process exits.
func (l *Lifecycle) ScreenAdded(model.Screen) {
}

// Exit snapshots every live screen so the final on-disk state matches the
// last observed configuration of each.
func (l *Lifecycle) Exit() {
	if l.Lister == nil {
		return
	}
	if err := l.Store.SaveAll(l.Lister.Screens()); err != nil {
		pfxlog.Logger().WithError(err).Warn("unable to save state on exit")
	}
}
