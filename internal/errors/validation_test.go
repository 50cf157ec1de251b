package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("email", "is invalid")
	ve.AddFieldErrorf("age", "must be at least %d", 18)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "email: is invalid")
	s.Assert().Contains(ve.Error(), "age: must be at least 18")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("skill", "must be between %d and %d", 0, 75).
		RequiredField("player_id").
		InvalidField("slot", "not a known equipment slot")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("手枪", 80, 0, 75, vb)
	errors.ValidateRange("格斗", 75, 0, 75, vb)
	errors.ValidateRange("choice", 0, 1, 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["手枪"][0], "must be between 0 and 75")
	s.Assert().Contains(validationErrors["choice"][0], "must be between 1 and 3")
	s.Assert().NotContains(validationErrors, "格斗")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedSlots := []string{"近战", "远程", "防具"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("slot", "饰品", allowedSlots, vb)
	errors.ValidateEnum("weapon_slot", "近战", allowedSlots, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["slot"][0], "must be one of: 近战, 远程, 防具")
	s.Assert().NotContains(validationErrors, "weapon_slot")
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("Quantity", 0, vb)
	errors.ValidatePositive("Shots", 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["Quantity"][0], "must be positive")
	s.Assert().NotContains(validationErrors, "Shots")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	type AllocationInput struct {
		PlayerID string
		Skill    string
		Points   int
	}

	input := AllocationInput{
		PlayerID: "",
		Skill:    "魔法",
		Points:   90,
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateEnum("skill", input.Skill, []string{"手枪", "步枪", "格斗"}, vb)
	errors.ValidateRange("points", input.Points, 0, 75, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: player_id: is required; points: must be between 0 and 75; skill: must be one of: 手枪, 步枪, 格斗",
		err.Error())
}
