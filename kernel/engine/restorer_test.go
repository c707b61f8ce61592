package engine

import (
	"testing"

	"github.com/chunga-ict/retained/kernel/model"
)

func TestRestorer_PlanFromRetainedState(t *testing.T) {
	memStore, registry := newTestStore()
	memStore.Seed(model.PersistedState{
		3: {
			1: {Name: "A", Layout: "tile"},
			2: {Name: "B", Layout: "floating"},
		},
	})
	if err := memStore.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	restorer := NewRestorer(memStore, model.Defaults{
		Names:   []string{"1"},
		Layouts: []model.Layout{registry.Lookup("tile")},
	})

	plans, substituted := restorer.Plan(&model.StaticScreen{Id: 3})
	if substituted != 0 {
		t.Errorf("expected no substitutions, got %d", substituted)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}
	if plans[0].Name != "A" || plans[0].Layout != registry.Lookup("tile") {
		t.Errorf("unexpected plan 0: %+v", plans[0])
	}
	if plans[1].Name != "B" || plans[1].Layout != registry.Lookup("floating") {
		t.Errorf("unexpected plan 1: %+v", plans[1])
	}
}

func TestRestorer_SubstitutesUnknownLayout(t *testing.T) {
	memStore, registry := newTestStore()
	memStore.Seed(model.PersistedState{
		1: {
			1: {Name: "a", Layout: "nonexistent"},
			2: {Name: "b", Layout: "max"},
		},
	})
	if err := memStore.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	fallback := registry.Lookup("tile")
	restorer := NewRestorer(memStore, model.Defaults{
		Names:   []string{"1"},
		Layouts: []model.Layout{fallback},
	})

	plans, substituted := restorer.Plan(&model.StaticScreen{Id: 1})
	if substituted != 1 {
		t.Errorf("expected 1 substitution, got %d", substituted)
	}
	if plans[0].Layout != fallback {
		t.Error("unknown layout should be replaced with the first default layout")
	}
	if plans[1].Layout != registry.Lookup("max") {
		t.Error("known layout must not be substituted")
	}
}

func TestRestorer_DefaultsForUnknownScreen(t *testing.T) {
	memStore, registry := newTestStore()

	restorer := NewRestorer(memStore, model.Defaults{
		Names:   []string{"1", "2"},
		Layouts: []model.Layout{registry.Lookup("tile"), registry.Lookup("tile")},
	})

	plans, substituted := restorer.Plan(&model.StaticScreen{Id: 99})
	if substituted != 0 {
		t.Errorf("expected no substitutions, got %d", substituted)
	}
	if len(plans) != 2 || plans[0].Name != "1" || plans[1].Name != "2" {
		t.Errorf("expected default plans, got %+v", plans)
	}
}

func TestRestorer_Restore_Totals(t *testing.T) {
	memStore, registry := newTestStore()
	memStore.Seed(model.PersistedState{
		1: {1: {Name: "a", Layout: "tile"}},
		2: {1: {Name: "b", Layout: "gone"}},
	})
	if err := memStore.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	restorer := NewRestorer(memStore, model.Defaults{
		Names:   []string{"1"},
		Layouts: []model.Layout{registry.Lookup("tile")},
	})

	screens := model.StaticScreens{{Id: 1}, {Id: 2}}
	result, plans := restorer.Restore(screens.Screens())

	if result.Screens != 2 || result.Tags != 2 || result.Substituted != 1 {
		t.Errorf("unexpected totals: %+v", result)
	}
	if len(plans[1]) != 1 || len(plans[2]) != 1 {
		t.Errorf("expected one plan per screen, got %v", plans)
	}
}
