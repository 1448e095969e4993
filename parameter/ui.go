package parameter

// Layout & Margins
const (
	// HudRows is the number of rows reserved at the bottom for the HUD
	HudRows = 2

	// TopMargin is the title row
	TopMargin = 1
)

// Overlay Configuration
const (
	// OverlayWidth is the fixed width of the solved and pause dialogs
	OverlayWidth = 36

	// OverlayHeight is the fixed height of the solved and pause dialogs
	OverlayHeight = 7
)

// Debug axis overlay
const (
	// DebugAxisLength is the world length of each debug axis marker
	DebugAxisLength = 3.0

	// DebugAxisSteps is the number of marker cells per axis
	DebugAxisSteps = 12
)

// HelpText is the key help shown in the HUD
const HelpText = "drag:move ring  arrows/drag:orbit  +/-:zoom  p:pause  m:mute  r:reset  q:quit"
