package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconTitle    = "🎬"
	IconLink     = "🔗"
	IconStart    = "⬇️"
	IconSave     = "💾"
	IconSuccess  = "✅"
	IconError    = "❌"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 360

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 360
)
