package model

// Built-in layout types. A window manager host normally hands the store its
// own layout handles; these cover the CLI, the MCP server and hosts that
// only care about names.

// TileLayout splits the screen into a master area and a stack.
type TileLayout struct {
	MasterCount int
}

func (l *TileLayout) Name() string {
	return "tile"
}

// FloatingLayout leaves windows where the user put them.
type FloatingLayout struct{}

func (l *FloatingLayout) Name() string {
	return "floating"
}

// MaxLayout maximizes the focused window.
type MaxLayout struct{}

func (l *MaxLayout) Name() string {
	return "max"
}

// MonocleLayout is max without borders or gaps.
type MonocleLayout struct{}

func (l *MonocleLayout) Name() string {
	return "monocle"
}

func init() {
	RegisterLayoutType("tile", func() Layout { return &TileLayout{MasterCount: 1} })
	RegisterLayoutType("floating", func() Layout { return &FloatingLayout{} })
	RegisterLayoutType("max", func() Layout { return &MaxLayout{} })
	RegisterLayoutType("monocle", func() Layout { return &MonocleLayout{} })
}
