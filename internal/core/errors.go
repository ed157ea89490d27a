package core

import "fmt"

// ValidationError reports a request rejected before any external call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// UpstreamError wraps a failure of the completion service call: network,
// authentication, or an empty reply.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "completion service: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// MalformedResponseError means the completion text could not be parsed as
// the expected JSON shape. Raw carries the full reply for diagnostics.
// It is never retried and never defaulted to an empty result.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "unparsable completion response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
