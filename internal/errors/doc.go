// Package errors provides structured, code-tagged errors for the SigLife
// API. Every error carries a Code from a closed set, an operator-facing
// message, an optional wrapped cause, and optional metadata.
//
// Construction:
//
//	errors.NotFoundf("stage %q not found", id)
//	errors.InvalidArgument("choice does not belong to the pending event")
//	errors.Wrapf(err, "failed to save session")
//
// Inspection:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.GetCode(err).HTTPStatus()
//
// The HTTP handlers map codes to status codes through Code.HTTPStatus, so
// lower layers never reference HTTP concepts directly. Config validation
// uses ValidationBuilder to report every missing dependency at once
// instead of failing on the first.
package errors
