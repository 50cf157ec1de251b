// Package errors provides the structured error type used across the storyteller.
//
// Every error carries a Code (mapped to a gRPC status) and optionally a Reason
// naming the game rule that rejected the request:
//
//	errors.InvalidExpressionf("bad term %q in %q", term, notation)
//	errors.InsufficientResourcef("need %d rounds, have %d", shots, ammo)
//	errors.ContentNotFoundf("monster %s", id)
//
// Wrapping keeps both code and reason so callers several layers up can still
// branch on the rule:
//
//	if errors.HasReason(err, errors.ReasonMissingEquipment) {
//	    // tell the player to equip something
//	}
//
// # Validation
//
// Config and input structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
//	errors.ValidatePositive("Quantity", input.Quantity, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). The reason and metadata ride along as
// a google.protobuf.Struct detail and are restored by FromGRPCError on the
// client side.
//
// # Layer guidelines
//
// Repositories return NotFound for missing records and wrap driver errors.
// Engines (dice, check, damage, combat) return reason-tagged errors and never
// mutate state before returning one. Orchestrators validate input, check
// preconditions and wrap everything else with context.
package errors
