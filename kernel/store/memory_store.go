package store

import (
	"sort"
	"sync"

	"github.com/chunga-ict/retained/kernel/model"
)

// MemoryStore is an in-memory StateStore for testing and for the MCP
// server's --memory mode. It has no backing file, so it is always ready to
// accept saves.
type MemoryStore struct {
	registry *model.LayoutRegistry
	defaults model.Defaults

	mu        sync.RWMutex
	persisted model.PersistedState
	resolved  map[int]resolvedScreen
}

func NewMemoryStore(registry *model.LayoutRegistry, defaults model.Defaults) *MemoryStore {
	return &MemoryStore{
		registry:  registry,
		defaults:  defaults,
		persisted: make(model.PersistedState),
		resolved:  make(map[int]resolvedScreen),
	}
}

// Seed replaces the persisted state wholesale. Test setup helper.
func (s *MemoryStore) Seed(state model.PersistedState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persisted = state.Clone()
}

// Load re-resolves every persisted screen against the layout registry.
func (s *MemoryStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolved = make(map[int]resolvedScreen, len(s.persisted))
	for id, record := range s.persisted {
		s.resolved[id] = convertRecord(record, s.registry)
	}
	return nil
}

func (s *MemoryStore) Save(screen model.Screen) error {
	if screen == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := screen.ID()
	record := model.CaptureScreen(screen)
	s.persisted[id] = record
	s.resolved[id] = convertRecord(record, s.registry)
	return nil
}

func (s *MemoryStore) SaveAll(screens []model.Screen) error {
	for _, screen := range screens {
		if err := s.Save(screen); err != nil {
			return err
		}
	}
	return nil
}

func (s *MemoryStore) Names(screen model.Screen) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if screen != nil {
		if entry, ok := s.resolved[screen.ID()]; ok && len(entry.names) > 0 {
			return append([]string(nil), entry.names...)
		}
	}
	return append([]string(nil), s.defaults.Names...)
}

func (s *MemoryStore) Layouts(screen model.Screen) []model.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if screen != nil {
		if entry, ok := s.resolved[screen.ID()]; ok && len(entry.layouts) > 0 {
			return append([]model.Layout(nil), entry.layouts...)
		}
	}
	return append([]model.Layout(nil), s.defaults.Layouts...)
}

func (s *MemoryStore) Screens() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.resolved))
	for id := range s.resolved {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
