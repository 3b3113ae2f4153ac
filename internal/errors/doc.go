// Package errors provides structured errors for pokidex.
//
// Every error carries a Code, a user-facing message, an optional cause and
// optional metadata. Codes survive wrapping, so a NotFound raised by the
// PokéAPI client is still a NotFound after the orchestrator adds context.
//
// # Basic Usage
//
//	err := errors.NotFoundf("pokemon %q not found", name)
//	err := errors.Unavailable("generation service unreachable").
//	    WithMeta("backend", "gemini")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to fetch pokemon")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // degrade gracefully
//	}
//
// # Taxonomy
//
//   - FailedPrecondition: configuration problems found at startup
//   - NotFound: an identifier did not resolve in the lookup service
//   - Unavailable: the lookup or generation service could not be reached
//   - InvalidArgument: bad input (empty question, unreadable image path)
//
// A malformed decision from the generation service is not an error at all;
// the orchestrator treats it as a signal to use its fallback path.
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Lookup == nil {
//	    vb.RequiredField("Lookup")
//	}
//	return vb.Build()
//
// # gRPC Integration
//
// ToGRPCError converts an *Error into a status error with an ErrorInfo
// detail; FromGRPCError goes the other way.
package errors
