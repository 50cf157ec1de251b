package check

import (
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Mode selects how an opposed check breaks ties
type Mode string

// Confrontation modes
const (
	// ModeContest is a plain contest such as initiative: higher level wins,
	// equal levels go to the higher skill, equal skills to side A.
	ModeContest Mode = "对抗"
	// ModeEvade lets A win only with a strictly higher level.
	ModeEvade Mode = "闪避"
	// ModeCounter requires A to succeed, then A wins ties.
	ModeCounter Mode = "反击"
)

// Result is one percentile check
type Result struct {
	Skill int
	Roll  int
	Level Level
}

// Confrontation is a pair of independent checks, A then B
type Confrontation struct {
	A Result
	B Result
}

// Resolve reports whether side A prevails under mode
func (c Confrontation) Resolve(mode Mode) bool {
	return Resolve(c.A.Level, c.B.Level, c.A.Skill, c.B.Skill, mode)
}

// BothFailed is true when neither side reached Success
func (c Confrontation) BothFailed() bool {
	return !c.A.Level.Succeeded() && !c.B.Level.Succeeded()
}

// Resolve decides an opposed check between A and B
func Resolve(levelA, levelB Level, skillA, skillB int, mode Mode) bool {
	switch mode {
	case ModeEvade:
		return levelA > levelB
	case ModeCounter:
		if !levelA.Succeeded() {
			return false
		}
		return levelA >= levelB
	default:
		if levelA != levelB {
			return levelA > levelB
		}
		return skillA >= skillB
	}
}

// TensResult is a check with penalty or bonus dice. Tens holds each extra
// tens digit (0-9) in the order drawn.
type TensResult struct {
	Skill int
	Base  int
	Tens  []int
	Final int
	Level Level
}

// Resolver rolls checks using a dice roller
type Resolver struct {
	roller *dice.Roller
}

// NewResolver creates a resolver; nil uses the default roller
func NewResolver(roller *dice.Roller) *Resolver {
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	return &Resolver{roller: roller}
}

// Roll makes one d100 check against skill
func (r *Resolver) Roll(skill int) (Result, error) {
	roll, err := r.roller.Die(100)
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to roll check")
	}
	return Result{Skill: skill, Roll: roll, Level: LevelFor(skill, roll)}, nil
}

// Confront rolls A then B
func (r *Resolver) Confront(skillA, skillB int) (Confrontation, error) {
	a, err := r.Roll(skillA)
	if err != nil {
		return Confrontation{}, err
	}
	b, err := r.Roll(skillB)
	if err != nil {
		return Confrontation{}, err
	}
	return Confrontation{A: a, B: b}, nil
}

// Penalty rolls with n penalty dice and keeps the worst composed roll
func (r *Resolver) Penalty(skill, n int) (TensResult, error) {
	return r.tens(skill, n, true)
}

// Bonus rolls with n bonus dice and keeps the best composed roll
func (r *Resolver) Bonus(skill, n int) (TensResult, error) {
	return r.tens(skill, n, false)
}

func (r *Resolver) tens(skill, n int, penalty bool) (TensResult, error) {
	base, err := r.roller.Die(100)
	if err != nil {
		return TensResult{}, errors.Wrap(err, "failed to roll check")
	}

	res := TensResult{Skill: skill, Base: base, Final: base, Tens: make([]int, 0, n)}
	for i := 0; i < n; i++ {
		face, err := r.roller.Die(10)
		if err != nil {
			return TensResult{}, errors.Wrap(err, "failed to roll tens die")
		}
		digit := face - 1
		res.Tens = append(res.Tens, digit)

		composed := base
		if penalty && base/10 < digit {
			composed = base%10 + digit*10
		}
		if !penalty && base/10 > digit {
			composed = base%10 + digit*10
		}
		if composed == 0 {
			composed = 100
		}

		if penalty && composed > res.Final {
			res.Final = composed
		}
		if !penalty && composed < res.Final {
			res.Final = composed
		}
	}

	res.Level = LevelFor(skill, res.Final)
	return res, nil
}
