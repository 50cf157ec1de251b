package damage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-storyteller/internal/check"
	"github.com/KirkDiggler/rpg-storyteller/internal/damage"
	"github.com/KirkDiggler/rpg-storyteller/internal/dice"
	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
	"github.com/KirkDiggler/rpg-storyteller/internal/testutils"
)

type CalculatorTestSuite struct {
	suite.Suite
}

func TestCalculatorSuite(t *testing.T) {
	suite.Run(t, new(CalculatorTestSuite))
}

func (s *CalculatorTestSuite) calculator(faces ...int) *damage.Calculator {
	return damage.NewCalculator(dice.NewRoller(testutils.NewScriptedRoller(faces...)))
}

func (s *CalculatorTestSuite) TestCompute() {
	testCases := []struct {
		name   string
		faces  []int
		input  damage.Input
		amount int
		raw    int
		trace  string
	}{
		{
			name:   "critical penetrating through armor",
			faces:  []int{4},
			input:  damage.Input{Notation: "1d6", Level: check.CriticalSuccess, Penetrating: true, Armor: 3},
			amount: 7,
			raw:    10,
			trace:  "(1d6+1d6)-3=(6+4)-3",
		},
		{
			name:   "simple notation shows alone",
			faces:  []int{4},
			input:  damage.Input{Notation: "1d6", Level: check.Success},
			amount: 4,
			raw:    4,
			trace:  "1d6",
		},
		{
			name:   "compound notation shows detail",
			faces:  []int{3, 2},
			input:  damage.Input{Notation: "1d6+1d4", Level: check.HardSuccess},
			amount: 5,
			raw:    5,
			trace:  "1d6+1d4=3+2",
		},
		{
			name:   "extreme without penetration rolls maximum",
			input:  damage.Input{Notation: "2d6+1", Level: check.ExtremeSuccess},
			amount: 13,
			raw:    13,
			trace:  "2d6+1=6+6+1",
		},
		{
			name:   "doubled damage without armor",
			faces:  []int{2, 5},
			input:  damage.Input{Notation: "2d6", Level: check.CriticalSuccess, Penetrating: true},
			amount: 19,
			raw:    19,
			trace:  "2d6+2d6=6+6+2+5",
		},
		{
			name:   "armor floors at zero",
			faces:  []int{2},
			input:  damage.Input{Notation: "1d6", Level: check.Success, Armor: 5},
			amount: 0,
			raw:    2,
			trace:  "(1d6)-5=(2)-5",
		},
		{
			name:   "penetrating armor floors at one",
			faces:  []int{2},
			input:  damage.Input{Notation: "1d6", Level: check.Success, Penetrating: true, Armor: 5},
			amount: 1,
			raw:    2,
			trace:  "(1d6)-5=(2)-5",
		},
		{
			name:   "negative bonus clamps at zero",
			faces:  []int{1},
			input:  damage.Input{Notation: "1d3-2", Level: check.Success},
			amount: 0,
			raw:    -1,
			trace:  "1d3-2=1-2",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res, err := s.calculator(tc.faces...).Compute(tc.input)
			s.Require().NoError(err)
			s.Assert().Equal(tc.amount, res.Amount)
			s.Assert().Equal(tc.raw, res.Raw)
			s.Assert().Equal(tc.trace, res.Trace)
		})
	}
}

func (s *CalculatorTestSuite) TestComputeInvalidNotation() {
	_, err := s.calculator().Compute(damage.Input{Notation: "1d", Level: check.Success})
	s.Require().Error(err)
	s.Assert().True(errors.HasReason(err, errors.ReasonInvalidExpression))
}

func (s *CalculatorTestSuite) TestBonus() {
	testCases := []struct {
		size     int
		strength int
		expected string
	}{
		{size: 30, strength: 30, expected: "-2"},
		{size: 40, strength: 25, expected: "-1"},
		{size: 50, strength: 50, expected: "0"},
		{size: 60, strength: 65, expected: "1d4"},
		{size: 90, strength: 80, expected: "1d6"},
		{size: 105, strength: 100, expected: "2d6"},
		{size: 150, strength: 135, expected: "3d6"},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			s.Assert().Equal(tc.expected, damage.Bonus(tc.size, tc.strength))
		})
	}
}

func (s *CalculatorTestSuite) TestWithBonus() {
	s.Assert().Equal("1d6+1d4", damage.WithBonus("1d6", "1d4"))
	s.Assert().Equal("1d6-1", damage.WithBonus("1d6", "-1"))
	s.Assert().Equal("1d6", damage.WithBonus("1d6", "0"))
	s.Assert().Equal("1d6", damage.WithBonus("1d6", ""))
}

func TestArmorNeverDrivesBelowFloor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.IntRange(0, 200).Draw(t, "raw")
		armor := rapid.IntRange(0, 50).Draw(t, "armor")
		penetrating := rapid.Bool().Draw(t, "penetrating")

		amount := damage.Mitigate(raw, armor, penetrating)
		require.GreaterOrEqual(t, amount, 0)
		require.LessOrEqual(t, amount, raw)
		if penetrating && raw > 0 {
			require.GreaterOrEqual(t, amount, 1)
		}
	})
}

func TestComputeRespectsArmorFloor(t *testing.T) {
	calc := damage.NewCalculator(nil)
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(1, 4).Draw(t, "count")
		sides := rapid.SampledFrom([]int{3, 4, 6, 8, 10}).Draw(t, "sides")
		armor := rapid.IntRange(0, 30).Draw(t, "armor")
		penetrating := rapid.Bool().Draw(t, "penetrating")
		level := check.Level(rapid.IntRange(1, 4).Draw(t, "level"))

		res, err := calc.Compute(damage.Input{
			Notation:    fmt.Sprintf("%dd%d", count, sides),
			Level:       level,
			Penetrating: penetrating,
			Armor:       armor,
		})
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Amount, 0)
		if penetrating {
			require.GreaterOrEqual(t, res.Amount, 1)
		}
	})
}
