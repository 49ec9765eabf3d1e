package services

// ValidationError carries per-field, user-correctable error messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// TransportError means the reservation could not be forwarded to the form
// endpoint. Terminal and user-visible; the user must resubmit.
type TransportError struct{ Message string }

func (e *TransportError) Error() string { return e.Message }

// UpstreamError means the generative-language API call failed. The original
// error is logged server-side; clients only see a generic message.
type UpstreamError struct{ Err error }

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }
