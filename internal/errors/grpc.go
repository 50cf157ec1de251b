package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	detailReason = "reason"
	detailMeta   = "meta"
)

// ToGRPCError converts an error to a gRPC status error. Reason and metadata
// travel as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if customErr.Reason == "" && len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, detailErr := buildDetails(customErr)
	if detailErr != nil {
		return st.Err()
	}
	if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error back into an Error, restoring the
// reason and metadata when the server attached them.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		fields := details.AsMap()
		if reason, ok := fields[detailReason].(string); ok {
			customErr.Reason = Reason(reason)
		}
		if meta, ok := fields[detailMeta].(map[string]interface{}); ok {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	st, _ := status.FromError(ToGRPCError(err))
	return st
}

// buildDetails normalizes metadata through JSON so structpb accepts typed
// values such as map[string][]string from validation errors.
func buildDetails(e *Error) (*structpb.Struct, error) {
	fields := map[string]interface{}{}
	if e.Reason != "" {
		fields[detailReason] = string(e.Reason)
	}
	if len(e.Meta) > 0 {
		raw, err := json.Marshal(e.Meta)
		if err != nil {
			return nil, err
		}
		var meta map[string]interface{}
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, err
		}
		fields[detailMeta] = meta
	}
	return structpb.NewStruct(fields)
}
