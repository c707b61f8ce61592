package store

import "github.com/chunga-ict/retained/kernel/model"

// StateStore manages the retained per-screen tag state.
type StateStore interface {
	// Load reads previously persisted state. Missing or malformed save data
	// is absorbed: the store comes up empty and every lookup falls back to
	// the configured defaults.
	Load() error

	// Save snapshots one screen's tags and flushes the complete persisted
	// state. A nil screen is a no-op.
	Save(screen model.Screen) error

	// SaveAll snapshots every listed screen. Used on process exit.
	SaveAll(screens []model.Screen) error

	// Names returns the retained tag names for the screen, or the default
	// names when nothing usable is retained for it.
	Names(screen model.Screen) []string

	// Layouts returns the retained layout handles for the screen, or the
	// default layouts. Entries may be nil where a persisted layout name no
	// longer matches any registered layout.
	Layouts(screen model.Screen) []model.Layout

	// Screens lists the screen ids with resolved state, ascending.
	Screens() []int
}

// Notifier is the user-visible sink for critical one-shot notices. Window
// manager hosts route this to their notification popups.
type Notifier interface {
	Critical(title, text string)
}
