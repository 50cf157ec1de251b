// Package damage turns a weapon's damage notation and a check level into
// hit points lost, applying the extreme-success and armor rules.
package damage

import (
	"fmt"

	"github.com/KirkDiggler/rpg-storyteller/internal/check"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

// Input describes one damage roll
type Input struct {
	// Notation is the weapon damage, already combined with any damage bonus
	Notation string
	// Level is the success level of the hit
	Level check.Level
	// Penetrating weapons roll doubled damage on extreme hits and always
	// push at least one point through armor
	Penetrating bool
	// Armor is subtracted once from the rolled total
	Armor int
}

// Result is the damage dealt
type Result struct {
	// Amount is never negative
	Amount int
	// Raw is the rolled total before armor
	Raw int
	// Trace reads like "1d6+1d4=3+2" or "(1d6)-2=(4)-2"
	Trace string
}

// Calculator rolls damage
type Calculator struct {
	roller *dice.Roller
}

// NewCalculator creates a calculator; nil uses the default roller
func NewCalculator(roller *dice.Roller) *Calculator {
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	return &Calculator{roller: roller}
}

// Compute rolls the damage for input
func (c *Calculator) Compute(input Input) (*Result, error) {
	expr, err := dice.Parse(input.Notation)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid damage %q", input.Notation)
	}

	display := input.Notation
	var detail string
	var raw int
	doubled := false

	switch {
	case input.Level.Critical() && input.Penetrating:
		high := c.roller.RollMax(expr)
		rolled, err := c.roller.Roll(expr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll damage")
		}
		display = input.Notation + "+" + input.Notation
		detail = high.Detail + "+" + rolled.Detail
		raw = high.Total + rolled.Total
		doubled = true
	case input.Level.Critical():
		high := c.roller.RollMax(expr)
		detail = high.Detail
		raw = high.Total
	default:
		rolled, err := c.roller.Roll(expr)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll damage")
		}
		detail = rolled.Detail
		raw = rolled.Total
	}

	amount := raw
	if input.Armor > 0 {
		amount = Mitigate(raw, input.Armor, input.Penetrating)
		display = fmt.Sprintf("(%s)-%d", display, input.Armor)
		detail = fmt.Sprintf("(%s)-%d", detail, input.Armor)
	}
	if amount < 0 {
		amount = 0
	}

	trace := display + "=" + detail
	if input.Armor <= 0 && !doubled && expr.Simple() {
		trace = display
	}

	return &Result{Amount: amount, Raw: raw, Trace: trace}, nil
}

// Mitigate subtracts armor from raw. The floor is 0, or 1 for penetrating
// damage that rolled anything at all.
func Mitigate(raw, armor int, penetrating bool) int {
	if armor < 0 {
		armor = 0
	}
	floor := 0
	if penetrating && raw > 0 {
		floor = 1
	}
	amount := raw - armor
	if amount < floor {
		return floor
	}
	return amount
}
