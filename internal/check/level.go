// Package check turns percentile rolls into success levels and settles
// opposed rolls between two sides.
package check

// Level is the ordered outcome of a percentile check
type Level int

// Success levels, strictly ordered
const (
	CriticalFailure Level = -1
	Failure         Level = 0
	Success         Level = 1
	HardSuccess     Level = 2
	ExtremeSuccess  Level = 3
	CriticalSuccess Level = 4
)

const (
	fumbleAbove   = 95
	criticalBelow = 6
)

// String returns the English name of the level
func (l Level) String() string {
	switch l {
	case CriticalFailure:
		return "critical_failure"
	case Failure:
		return "failure"
	case Success:
		return "success"
	case HardSuccess:
		return "hard_success"
	case ExtremeSuccess:
		return "extreme_success"
	case CriticalSuccess:
		return "critical_success"
	default:
		return "unknown"
	}
}

// Label returns the in-game name shown to players
func (l Level) Label() string {
	switch l {
	case CriticalFailure:
		return "大失败"
	case Failure:
		return "失败"
	case Success:
		return "成功"
	case HardSuccess:
		return "困难成功"
	case ExtremeSuccess:
		return "极难成功"
	case CriticalSuccess:
		return "大成功"
	default:
		return "未知"
	}
}

// Succeeded is true for Success and above
func (l Level) Succeeded() bool {
	return l > Failure
}

// Critical is true for the levels that roll maximum damage
func (l Level) Critical() bool {
	return l > HardSuccess
}

// LevelFor maps a d100 roll against a skill rating. Fumbles (96-100) and
// criticals (1-5) are decided before the skill is consulted. Otherwise the
// roll/skill ratio is compared strictly: >1 fails, >1/2 succeeds, >1/5 is a
// hard success and anything lower is extreme. A skill of zero or less fails
// every ratio-evaluated roll.
func LevelFor(skill, roll int) Level {
	if roll > fumbleAbove {
		return CriticalFailure
	}
	if roll < criticalBelow {
		return CriticalSuccess
	}
	if skill <= 0 {
		return Failure
	}

	// integer forms of roll/skill > 1, > 0.5, > 0.2
	switch {
	case roll > skill:
		return Failure
	case 2*roll > skill:
		return Success
	case 5*roll > skill:
		return HardSuccess
	default:
		return ExtremeSuccess
	}
}
