package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-storyteller/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "investigator not found",
			expected: "NOT_FOUND: investigator not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid input",
			expected: "INVALID_ARGUMENT: invalid input",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("investigator not found").
		WithMeta("player_id", "123").
		WithMeta("day", 4)

	s.Assert().Equal("123", err.Meta["player_id"])
	s.Assert().Equal(4, err.Meta["day"])

	wrapped := errors.Wrap(err, "load failed")
	s.Assert().Equal(err.Meta, wrapped.Meta)
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database connection failed")
	wrapped := errors.Wrap(baseErr, "failed to load investigator")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load investigator", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	baseErr := errors.InsufficientResourcef("need 3 rounds, have 2")
	wrapped := errors.Wrap(baseErr, "cannot fire")

	s.Assert().Equal(errors.CodeResourceExhausted, wrapped.Code)
	s.Assert().Equal(errors.ReasonInsufficientResource, wrapped.Reason)
	s.Assert().Equal("cannot fire", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.ContentNotFoundf("monster 9").WithMeta("monster_id", "9")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "roster references unknown monster")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Empty(wrapped.Reason)
	s.Assert().Equal("9", wrapped.Meta["monster_id"])
	s.Assert().True(errors.HasReason(wrapped, errors.ReasonContentLookup))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestReasonConstructors() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
		reason      errors.Reason
	}{
		{"InvalidExpression", func() *errors.Error { return errors.InvalidExpressionf("x") }, errors.CodeInvalidArgument, errors.ReasonInvalidExpression},
		{"InvalidAction", func() *errors.Error { return errors.InvalidActionf("x") }, errors.CodeInvalidArgument, errors.ReasonInvalidAction},
		{"MissingEquipment", func() *errors.Error { return errors.MissingEquipmentf("x") }, errors.CodeFailedPrecondition, errors.ReasonMissingEquipment},
		{"InsufficientResource", func() *errors.Error { return errors.InsufficientResourcef("x") }, errors.CodeResourceExhausted, errors.ReasonInsufficientResource},
		{"ContentLookup", func() *errors.Error { return errors.ContentNotFoundf("x") }, errors.CodeNotFound, errors.ReasonContentLookup},
		{"SessionTerminated", func() *errors.Error { return errors.SessionTerminatedf("x") }, errors.CodeFailedPrecondition, errors.ReasonSessionTerminated},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.reason, err.Reason)
			s.Assert().Equal(tc.reason, errors.GetReason(err))
			s.Assert().Equal("x", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("test")
	err2 := errors.NotFound("test")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))

	action := errors.InvalidActionf("no such action")
	s.Assert().True(errors.Is(action, errors.InvalidArgument("any")))
	s.Assert().True(errors.Is(action, errors.InvalidActionf("other")))
	s.Assert().False(errors.Is(action, errors.InvalidExpressionf("other")))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	notFoundErr := errors.NotFound("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(notFoundErr, "wrapped")

	s.Assert().True(errors.IsNotFound(notFoundErr))
	s.Assert().True(errors.IsNotFound(wrappedErr))
	s.Assert().False(errors.IsNotFound(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(notFoundErr))

	s.Assert().True(errors.IsFailedPrecondition(errors.MissingEquipmentf("no gun")))
	s.Assert().True(errors.IsResourceExhausted(errors.InsufficientResourcef("no ammo")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("player facing message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("player facing message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.MissingEquipmentf("no ranged weapon equipped").
		WithMeta("slot", "远程")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.FailedPrecondition, st.Code())
	s.Assert().Equal("no ranged weapon equipped", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(back))
	s.Assert().Equal(errors.ReasonMissingEquipment, errors.GetReason(back))
	s.Assert().Equal("远程", errors.GetMeta(back)["slot"])

	plain := errors.FromGRPCError(status.Error(codes.InvalidArgument, "invalid input"))
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(plain))
	s.Assert().Equal("invalid input", errors.GetMessage(plain))
	s.Assert().Empty(errors.GetReason(plain))
}

func (s *ErrorsTestSuite) TestGRPCConversionValidationMeta() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("PlayerID")

	grpcErr := errors.ToGRPCError(vb.Build())
	back := errors.FromGRPCError(grpcErr)

	s.Assert().True(errors.IsInvalidArgument(back))
	fields, ok := errors.GetMeta(back)["validation_errors"].(map[string]interface{})
	s.Require().True(ok)
	s.Assert().Contains(fields, "PlayerID")
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeAlreadyExists, codes.AlreadyExists},
		{errors.CodeResourceExhausted, codes.ResourceExhausted},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
