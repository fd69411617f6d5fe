package core

// SteerMode is the enemy locomotion state
type SteerMode uint8

const (
	ModeWander SteerMode = iota
	ModeSeek
)

func (m SteerMode) String() string {
	switch m {
	case ModeWander:
		return "wander"
	case ModeSeek:
		return "seek"
	default:
		return "unknown"
	}
}
