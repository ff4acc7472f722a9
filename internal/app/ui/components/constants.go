package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for animations
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)

	StatsPollingInterval = time.Second
	StatsTimeout         = 500 * time.Millisecond

	// LiveFlashTicks is how long the live indicator pulses after new output
	LiveFlashTicks = 15

	TipRotationTicks = 100
)

// Layout constants
const (
	// PanelHeightPadding covers header, status bar, footer and help lines
	PanelHeightPadding = 5
	MinPanelHeight     = 3

	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10

	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5

	DialogWidth          = 50
	DefaultViewportWidth = 80
)
