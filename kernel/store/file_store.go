package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/chunga-ict/retained/kernel/model"
	"github.com/michaelquigley/pfxlog"
	"github.com/pkg/errors"
)

// ErrNotLoaded is returned by Save before Load has run. Accepting a save
// first would overwrite the file with a partial view of the world, silently
// dropping screens not yet observed this run.
var ErrNotLoaded = errors.New("state store not loaded")

type resolvedScreen struct {
	names   []string
	layouts []model.Layout
}

func convertRecord(record model.ScreenRecord, registry *model.LayoutRegistry) resolvedScreen {
	entry := resolvedScreen{}
	for _, pos := range record.Positions() {
		tag := record[pos]
		entry.names = append(entry.names, tag.Name)
		entry.layouts = append(entry.layouts, registry.Lookup(tag.Layout))
	}
	return entry
}

// FileStore persists per-screen tag state to a single JSON file. The whole
// file is rewritten on every save so it always reflects the complete
// persisted state, including screens not involved in the triggering call.
type FileStore struct {
	path     string
	registry *model.LayoutRegistry
	defaults model.Defaults
	notifier Notifier

	mu        sync.RWMutex
	persisted model.PersistedState
	resolved  map[int]resolvedScreen
	loaded    bool
}

func NewFileStore(path string, registry *model.LayoutRegistry, defaults model.Defaults) *FileStore {
	return &FileStore{
		path:      path,
		registry:  registry,
		defaults:  defaults,
		notifier:  LogNotifier{},
		persisted: make(model.PersistedState),
		resolved:  make(map[int]resolvedScreen),
	}
}

// SetNotifier replaces the critical-notice sink. Call before Load.
func (s *FileStore) SetNotifier(n Notifier) {
	s.notifier = n
}

// Load reads the save file and resolves every persisted screen against the
// layout registry. A missing file and a malformed file are both absorbed:
// the user gets one critical notice, the store comes up empty and lookups
// fall back to the defaults. A malformed file is left untouched on disk.
// Load is idempotent with respect to file content; once the persisted state
// is populated it is only re-resolved, never re-read.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.persisted) == 0 {
		data, err := os.ReadFile(s.path)
		if os.IsNotExist(err) {
			s.notifier.Critical("retained", "no save file found, using defaults")
			s.resolved = make(map[int]resolvedScreen)
			s.loaded = true
			return nil
		}
		if err == nil {
			var parsed model.PersistedState
			if err = json.Unmarshal(data, &parsed); err == nil && parsed == nil {
				err = errors.New("save data is not an object")
			}
			if err == nil {
				s.persisted = parsed
			}
		}
		if err != nil {
			s.notifier.Critical("retained", "error loading saved data, using defaults")
			s.resolved = make(map[int]resolvedScreen)
			s.loaded = true
			return nil
		}
	}

	s.resolved = make(map[int]resolvedScreen, len(s.persisted))
	for id, record := range s.persisted {
		s.resolved[id] = convertRecord(record, s.registry)
	}
	s.loaded = true
	return nil
}

// Save captures the screen's current tags, replaces that screen's entry in
// the persisted state, re-resolves it and flushes the complete state to
// disk. A nil screen is a defensive no-op against host callback misuse.
func (s *FileStore) Save(screen model.Screen) error {
	if screen == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return ErrNotLoaded
	}

	id := screen.ID()
	record := model.CaptureScreen(screen)
	s.persisted[id] = record
	s.resolved[id] = convertRecord(record, s.registry)

	return s.flush()
}

// SaveAll saves every listed screen. Failures are logged and do not stop the
// remaining screens from being saved; the first error is returned.
func (s *FileStore) SaveAll(screens []model.Screen) error {
	var firstErr error
	for _, screen := range screens {
		if err := s.Save(screen); err != nil {
			pfxlog.Logger().WithError(err).Warn("unable to save screen state")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *FileStore) Names(screen model.Screen) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if screen != nil {
		if entry, ok := s.resolved[screen.ID()]; ok && len(entry.names) > 0 {
			return append([]string(nil), entry.names...)
		}
	}
	return append([]string(nil), s.defaults.Names...)
}

func (s *FileStore) Layouts(screen model.Screen) []model.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if screen != nil {
		if entry, ok := s.resolved[screen.ID()]; ok && len(entry.layouts) > 0 {
			return append([]model.Layout(nil), entry.layouts...)
		}
	}
	return append([]model.Layout(nil), s.defaults.Layouts...)
}

func (s *FileStore) Screens() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.resolved))
	for id := range s.resolved {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// State returns a copy of the persisted state.
func (s *FileStore) State() model.PersistedState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persisted.Clone()
}

func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "failed to create save directory")
	}

	data, err := json.MarshalIndent(s.persisted, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal retained state")
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write save file")
	}
	return nil
}
