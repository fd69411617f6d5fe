package parameter

// Layout & Margins
const (
	// TopMargin for the HUD line
	TopMargin = 1

	// BottomMargin for the key hint line
	BottomMargin = 1
)

// Glyphs
const (
	PlayerChar    = '@'
	GoalChar      = '◆'
	EnemyChar     = '●'
	EnemySeekChar = '◉'
	BorderCharH   = '─'
	BorderCharV   = '│'
	AudioStr      = "♫ "
	AudioMutedStr = "  "
	KeyHintText   = "arrows/wasd move · enter start · m mute · q quit"
)

// Menu and victory modal copy
const (
	MenuTitleText    = "DIAMOND RUN\n\nReach the diamond, dodge the monsters.\nFive worlds stand between you and victory.\n\nPress Enter to start"
	VictoryTitleText = "VICTORY\n\nAll five diamonds recovered.\n\nPress Enter to return to the menu"
)

// SeekTintAlpha blends a seeking enemy's color toward white
const SeekTintAlpha = 0.45
