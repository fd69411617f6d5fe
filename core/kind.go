package core

// EnemyKind is the closed taxonomy of hostile entities
type EnemyKind uint8

const (
	KindSlime EnemyKind = iota
	KindBat
	KindGhost
	KindHound
	KindWraith
	KindCount
)

// KindCategory groups kinds for seek-eligibility weighting
type KindCategory uint8

const (
	// CategoryDrifter kinds rarely give chase
	CategoryDrifter KindCategory = iota
	// CategoryChaser kinds are predisposed to seek
	CategoryChaser
)

var kindNames = [KindCount]string{"slime", "bat", "ghost", "hound", "wraith"}

func (k EnemyKind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Category returns the behavioral group of the kind
func (k EnemyKind) Category() KindCategory {
	switch k {
	case KindBat, KindHound, KindWraith:
		return CategoryChaser
	default:
		return CategoryDrifter
	}
}

// ParseEnemyKind maps a lowercase name back to its kind
func ParseEnemyKind(name string) (EnemyKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return EnemyKind(i), true
		}
	}
	return 0, false
}
