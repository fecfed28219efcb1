package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconError    = "❌"
	IconCheck    = "✓"
)

// Window sizing
const (
	WindowWidth  float32 = 960
	WindowHeight float32 = 720
)

// Layout sizing
const (
	CardMinWidth   float32 = 260
	TreeMinHeight  float32 = 280
	DialogWidth    float32 = 520
	DialogHeight   float32 = 560
	SettingsWidth  float32 = 500
	SettingsHeight float32 = 320
	DesktopColumns         = 3
	MobileColumns          = 1
)
