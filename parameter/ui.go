package parameter

// Field Dimensions (reference window, field units)
const (
	DefaultFieldWidth  = 1000
	DefaultFieldHeight = 600
)

// Terminal Cell Scale
// A cell covers CellWidth x CellHeight field units; 100x24 cells map to the reference window
const (
	CellWidth  = 10
	CellHeight = 25
)

// Panel Layout
const (
	// PanelWidth is the width of the left element panel
	PanelWidth = 200

	// PanelPadding is the inner horizontal padding of the panel
	PanelPadding = 10

	// PanelColumns is the number of icon columns
	PanelColumns = 3

	// PanelTop is the y of the first icon row, below the title
	PanelTop = 50

	// PanelRowGap is the vertical gap between icon rows
	PanelRowGap = 15

	// PanelColumnWidth is the width of one icon column
	PanelColumnWidth = (PanelWidth - PanelPadding*2) / PanelColumns
)

// Status Bar
const (
	// StatusBarHeight is the number of terminal rows reserved at the bottom
	StatusBarHeight = 1
)

// UI Strings
const (
	PanelTitle   = "Elements"
	LockedGlyph  = "?"
	TrashLabel   = "trash"
	AudioStr     = "♫ on"
	MutedStr     = "♫ off"
	HelpText     = "m:mute r:reset d:debug q:quit"
	DiscoveryFmt = "New element discovered: %s"
)
