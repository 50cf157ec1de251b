// Package dice parses additive dice notation such as "2d6+1-1d4" and rolls it
// against an rpg-toolkit roller.
package dice

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

const (
	maxDiceCount = 1000
	maxDieSides  = 1000000
)

// Term is one signed part of an expression. Sides is zero for a literal.
type Term struct {
	Negative bool
	Count    int
	Sides    int
	Value    int
}

// IsDice reports whether the term rolls dice
func (t Term) IsDice() bool {
	return t.Sides > 0
}

func (t Term) sign() int {
	if t.Negative {
		return -1
	}
	return 1
}

// String renders the term without its sign
func (t Term) String() string {
	if !t.IsDice() {
		return strconv.Itoa(t.Value)
	}
	return strconv.Itoa(t.Count) + "d" + strconv.Itoa(t.Sides)
}

// Expression is an immutable parsed dice expression
type Expression struct {
	terms []Term
}

// Parse turns notation into an Expression. Whitespace is ignored, "d6" means
// "1d6", and a leading sign is allowed.
func Parse(notation string) (*Expression, error) {
	compact := strings.ToLower(strings.Join(strings.Fields(notation), ""))
	if compact == "" {
		return nil, errors.InvalidExpressionf("empty dice expression")
	}

	var terms []Term
	negative := false
	start := 0
	for i := 0; i <= len(compact); i++ {
		if i < len(compact) && compact[i] != '+' && compact[i] != '-' {
			continue
		}

		part := compact[start:i]
		if part == "" {
			// only a single leading sign may be empty
			if i != 0 || len(terms) > 0 {
				return nil, errors.InvalidExpressionf("empty term in %q", notation)
			}
		} else {
			term, err := parseTerm(part)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid dice expression %q", notation)
			}
			term.Negative = negative
			terms = append(terms, term)
		}

		if i < len(compact) {
			negative = compact[i] == '-'
			start = i + 1
		}
	}

	if len(terms) == 0 {
		return nil, errors.InvalidExpressionf("no terms in %q", notation)
	}

	return &Expression{terms: terms}, nil
}

// MustParse is Parse for notation known at compile time
func MustParse(notation string) *Expression {
	expr, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return expr
}

func parseTerm(part string) (Term, error) {
	idx := strings.IndexByte(part, 'd')
	if idx < 0 {
		value, err := strconv.Atoi(part)
		if err != nil || !isDigits(part) {
			return Term{}, errors.InvalidExpressionf("term %q is neither a number nor NdM", part)
		}
		return Term{Value: value}, nil
	}

	count := 1
	if idx > 0 {
		if !isDigits(part[:idx]) {
			return Term{}, errors.InvalidExpressionf("bad dice count in %q", part)
		}
		n, err := strconv.Atoi(part[:idx])
		if err != nil {
			return Term{}, errors.InvalidExpressionf("bad dice count in %q", part)
		}
		count = n
	}

	if !isDigits(part[idx+1:]) {
		return Term{}, errors.InvalidExpressionf("bad die size in %q", part)
	}
	sides, err := strconv.Atoi(part[idx+1:])
	if err != nil {
		return Term{}, errors.InvalidExpressionf("bad die size in %q", part)
	}

	if count < 1 || sides < 1 {
		return Term{}, errors.InvalidExpressionf("dice count and size must be positive in %q", part)
	}
	if count > maxDiceCount || sides > maxDieSides {
		return Term{}, errors.InvalidExpressionf("term %q is too large", part)
	}

	return Term{Count: count, Sides: sides}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Terms returns a copy of the signed terms
func (e *Expression) Terms() []Term {
	out := make([]Term, len(e.terms))
	copy(out, e.terms)
	return out
}

// String renders canonical notation: "1d6+2-1d4"
func (e *Expression) String() string {
	var sb strings.Builder
	for i, t := range e.terms {
		switch {
		case t.Negative:
			sb.WriteByte('-')
		case i > 0:
			sb.WriteByte('+')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// Max is the highest total the expression can produce
func (e *Expression) Max() int {
	total := 0
	for _, t := range e.terms {
		if t.Negative {
			total -= t.low()
		} else {
			total += t.high()
		}
	}
	return total
}

// Min is the lowest total the expression can produce
func (e *Expression) Min() int {
	total := 0
	for _, t := range e.terms {
		if t.Negative {
			total -= t.high()
		} else {
			total += t.low()
		}
	}
	return total
}

func (t Term) high() int {
	if t.IsDice() {
		return t.Count * t.Sides
	}
	return t.Value
}

func (t Term) low() int {
	if t.IsDice() {
		return t.Count
	}
	return t.Value
}

// Simple reports a lone literal or a lone single die, the shapes whose
// trace is shown without an "=total" suffix.
func (e *Expression) Simple() bool {
	if len(e.terms) != 1 || e.terms[0].Negative {
		return false
	}
	t := e.terms[0]
	return !t.IsDice() || t.Count == 1
}
