package model

import (
	"fmt"
	"sync"
)

// Layout is a live layout handle. Window manager hosts supply their own
// layout objects; the built-in layouts in this package satisfy it too.
type Layout interface {
	Name() string
}

// LayoutRegistry is an ordered collection of named layouts. Lookup is exact
// match; the first layout registered under a name wins.
type LayoutRegistry struct {
	layouts []Layout
}

func NewLayoutRegistry(layouts ...Layout) *LayoutRegistry {
	return &LayoutRegistry{layouts: layouts}
}

func (r *LayoutRegistry) Register(layout Layout) {
	r.layouts = append(r.layouts, layout)
}

// Lookup returns the first layout registered under name, or nil when no
// layout matches.
func (r *LayoutRegistry) Lookup(name string) Layout {
	for _, layout := range r.layouts {
		if layout.Name() == name {
			return layout
		}
	}
	return nil
}

// First returns the first registered layout, or nil for an empty registry.
func (r *LayoutRegistry) First() Layout {
	if len(r.layouts) == 0 {
		return nil
	}
	return r.layouts[0]
}

func (r *LayoutRegistry) Layouts() []Layout {
	out := make([]Layout, len(r.layouts))
	copy(out, r.layouts)
	return out
}

// LayoutFactory creates a new instance of a layout type.
type LayoutFactory func() Layout

var (
	layoutTypesMu sync.RWMutex
	layoutTypes   = make(map[string]LayoutFactory)
	layoutOrder   []string
)

// RegisterLayoutType registers a factory for a given layout type name.
// e.g. RegisterLayoutType("tile", func() Layout { return &TileLayout{} })
func RegisterLayoutType(name string, factory LayoutFactory) {
	layoutTypesMu.Lock()
	defer layoutTypesMu.Unlock()
	if _, dup := layoutTypes[name]; dup {
		panic("RegisterLayoutType called twice for " + name)
	}
	layoutTypes[name] = factory
	layoutOrder = append(layoutOrder, name)
}

// GetLayoutType creates a new instance of the layout type by name.
func GetLayoutType(name string) (Layout, error) {
	layoutTypesMu.RLock()
	defer layoutTypesMu.RUnlock()
	factory, ok := layoutTypes[name]
	if !ok {
		return nil, fmt.Errorf("layout type '%s' not found in registry", name)
	}
	return factory(), nil
}

// DefaultRegistry builds a LayoutRegistry holding one instance of every
// registered layout type, in registration order.
func DefaultRegistry() *LayoutRegistry {
	layoutTypesMu.RLock()
	defer layoutTypesMu.RUnlock()
	r := &LayoutRegistry{}
	for _, name := range layoutOrder {
		r.layouts = append(r.layouts, layoutTypes[name]())
	}
	return r
}
