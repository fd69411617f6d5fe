package render

import "github.com/lixenwraith/diamond-run/core"

// Fixed colors; theme colors come from the level theme
var (
	RgbPlayer     = core.RGB{R: 255, G: 214, B: 64}  // Warm yellow
	RgbGoal       = core.RGB{R: 90, G: 220, B: 255}  // Diamond cyan
	RgbBorder     = core.RGB{R: 120, G: 120, B: 140} // Muted steel
	RgbHUDText    = core.RGB{R: 230, G: 230, B: 230} // Near white
	RgbHUDAccent  = core.RGB{R: 255, G: 165, B: 0}   // Orange level counter
	RgbHintText   = core.RGB{R: 140, G: 140, B: 140} // Gray
	RgbModalBg    = core.RGB{R: 26, G: 27, B: 38}    // Dark navy
	RgbVictoryBg  = core.RGB{R: 40, G: 32, B: 8}     // Dark gold
	RgbVictoryTxt = core.RGB{R: 255, G: 215, B: 0}   // Gold
	RgbSeekTint   = core.RGB{R: 255, G: 255, B: 255} // Seek highlight target
)
