package dice

import (
	"strconv"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Outcome is the result of one roll: the total and a per-term breakdown such
// as "3+5-2". It is never mutated after creation.
type Outcome struct {
	Total  int
	Detail string
}

// String renders "detail=total", or just the detail when it already is the
// total (a lone literal or a lone die).
func (o Outcome) String() string {
	if o.Detail == strconv.Itoa(o.Total) {
		return o.Detail
	}
	return o.Detail + "=" + strconv.Itoa(o.Total)
}

// Roller rolls expressions. All randomness in the storyteller flows through
// the wrapped rpg-toolkit roller so tests can script it.
type Roller struct {
	source toolkitdice.Roller
}

// NewRoller wraps source; nil selects the toolkit's default crypto roller
func NewRoller(source toolkitdice.Roller) *Roller {
	if source == nil {
		source = toolkitdice.DefaultRoller
	}
	return &Roller{source: source}
}

// Die rolls a single die in [1, sides]
func (r *Roller) Die(sides int) (int, error) {
	if sides < 1 {
		return 0, errors.InvalidExpressionf("die size must be positive, got %d", sides)
	}
	v, err := r.source.Roll(sides)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", sides)
	}
	return v, nil
}

// Pick returns a uniform index in [0, n). A single choice draws nothing.
func (r *Roller) Pick(n int) (int, error) {
	if n == 1 {
		return 0, nil
	}
	v, err := r.Die(n)
	if err != nil {
		return 0, err
	}
	return v - 1, nil
}

// Roll draws every die term at random
func (r *Roller) Roll(expr *Expression) (Outcome, error) {
	return r.roll(expr, false)
}

// RollMax evaluates the expression in maximum mode: added dice show their top
// face and subtracted dice their lowest, so the total always equals Max().
func (r *Roller) RollMax(expr *Expression) Outcome {
	out, _ := r.roll(expr, true)
	return out
}

// RollNotation parses and rolls in one step
func (r *Roller) RollNotation(notation string) (Outcome, error) {
	expr, err := Parse(notation)
	if err != nil {
		return Outcome{}, err
	}
	return r.Roll(expr)
}

func (r *Roller) roll(expr *Expression, useMax bool) (Outcome, error) {
	var sb strings.Builder
	total := 0

	for i, t := range expr.terms {
		values, err := r.termValues(t, useMax)
		if err != nil {
			return Outcome{}, err
		}

		sum := 0
		parts := make([]string, len(values))
		for j, v := range values {
			sum += v
			parts[j] = strconv.Itoa(v)
		}
		total += t.sign() * sum

		body := strings.Join(parts, "+")
		switch {
		case t.Negative && len(values) > 1:
			sb.WriteString("-(" + body + ")")
		case t.Negative:
			sb.WriteString("-" + body)
		case i > 0:
			sb.WriteString("+" + body)
		default:
			sb.WriteString(body)
		}
	}

	return Outcome{Total: total, Detail: sb.String()}, nil
}

func (r *Roller) termValues(t Term, useMax bool) ([]int, error) {
	if !t.IsDice() {
		return []int{t.Value}, nil
	}

	if useMax {
		face := t.Sides
		if t.Negative {
			face = 1
		}
		values := make([]int, t.Count)
		for i := range values {
			values[i] = face
		}
		return values, nil
	}

	values, err := r.source.RollN(t.Count, t.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", t.String())
	}
	return values, nil
}
