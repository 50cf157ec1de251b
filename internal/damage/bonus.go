package damage

import (
	"fmt"
	"strings"
)

// Bonus returns the damage-bonus notation for a size and strength pair
func Bonus(size, strength int) string {
	total := size + strength
	switch {
	case total < 65:
		return "-2"
	case total < 85:
		return "-1"
	case total < 125:
		return "0"
	case total < 165:
		return "1d4"
	case total < 205:
		return "1d6"
	default:
		return fmt.Sprintf("%dd6", (total-205)/80+2)
	}
}

// WithBonus appends a damage bonus to a base notation
func WithBonus(base, bonus string) string {
	bonus = strings.TrimSpace(bonus)
	if bonus == "" || bonus == "0" {
		return base
	}
	if strings.HasPrefix(bonus, "-") || strings.HasPrefix(bonus, "+") {
		return base + bonus
	}
	return base + "+" + bonus
}
