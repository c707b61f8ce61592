package engine

import (
	"github.com/chunga-ict/retained/kernel/model"
	"github.com/chunga-ict/retained/kernel/store"
	"github.com/michaelquigley/pfxlog"
)

// TagPlan is one tag to create on a screen: the retained name and a usable
// layout handle.
type TagPlan struct {
	Name   string
	Layout model.Layout
}

// RestoreResult summarizes a restore pass.
type RestoreResult struct {
	Screens     int
	Tags        int
	Substituted int
}

// Restorer turns retained state into tag-creation plans. It is the layer
// that makes unresolved layout names safe: the store preserves a nil handle
// at the tag's position, and the restorer substitutes the first default
// layout so tag creation never receives a nil.
type Restorer struct {
	Store    store.StateStore
	Defaults model.Defaults
}

func NewRestorer(s store.StateStore, defaults model.Defaults) *Restorer {
	return &Restorer{Store: s, Defaults: defaults}
}

// Plan builds the tag plans for one screen and reports how many layout
// handles had to be substituted.
func (r *Restorer) Plan(screen model.Screen) ([]TagPlan, int) {
	names := r.Store.Names(screen)
	layouts := r.Store.Layouts(screen)

	substituted := 0
	plans := make([]TagPlan, 0, len(names))
	for i, name := range names {
		var layout model.Layout
		if i < len(layouts) {
			layout = layouts[i]
		}
		if layout == nil {
			layout = r.fallbackLayout()
			substituted++
		}
		plans = append(plans, TagPlan{Name: name, Layout: layout})
	}
	return plans, substituted
}

// Restore plans every listed screen, keyed by stable screen id.
func (r *Restorer) Restore(screens []model.Screen) (*RestoreResult, map[int][]TagPlan) {
	result := &RestoreResult{}
	plans := make(map[int][]TagPlan, len(screens))

	for _, screen := range screens {
		screenPlans, substituted := r.Plan(screen)
		plans[screen.ID()] = screenPlans
		result.Screens++
		result.Tags += len(screenPlans)
		result.Substituted += substituted
	}

	if result.Substituted > 0 {
		pfxlog.Logger().Warnf("substituted default layout for %d tag(s) with unknown layout names", result.Substituted)
	}
	return result, plans
}

func (r *Restorer) fallbackLayout() model.Layout {
	if len(r.Defaults.Layouts) > 0 {
		return r.Defaults.Layouts[0]
	}
	return nil
}
