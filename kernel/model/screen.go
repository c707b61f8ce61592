package model

// Screen is the narrow view of a live screen this module needs: a stable
// identifier and the ordered tag list. The identifier must survive the
// screen's removal from the live enumeration; it is never a list index.
type Screen interface {
	ID() int
	Tags() []Tag
}

// Tag exposes the persisted identity of one workspace.
type Tag interface {
	Name() string
	LayoutName() string
}

// ScreenLister enumerates the currently live screens. The host supplies
// this; the save-all path on process exit consumes it.
type ScreenLister interface {
	Screens() []Screen
}

// StaticScreen is a plain Screen implementation for hosts that build their
// screen view up front, and for tests.
type StaticScreen struct {
	Id      int
	TagList []StaticTag
}

func (s *StaticScreen) ID() int { return s.Id }

func (s *StaticScreen) Tags() []Tag {
	tags := make([]Tag, 0, len(s.TagList))
	for i := range s.TagList {
		tags = append(tags, &s.TagList[i])
	}
	return tags
}

// StaticTag pairs a tag name with its layout name.
type StaticTag struct {
	TagName string
	Layout  string
}

func (t *StaticTag) Name() string       { return t.TagName }
func (t *StaticTag) LayoutName() string { return t.Layout }

// StaticScreens is a fixed screen enumeration satisfying ScreenLister.
type StaticScreens []*StaticScreen

func (s StaticScreens) Screens() []Screen {
	screens := make([]Screen, 0, len(s))
	for _, screen := range s {
		screens = append(screens, screen)
	}
	return screens
}
