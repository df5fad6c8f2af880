package forms

// RejectionKind classifies why a submission was refused.
type RejectionKind string

const (
	// MissingFields means one or more required fields were absent; checked
	// before any per-field format validation runs.
	MissingFields RejectionKind = "missing_fields"

	// InvalidField means every required field was present but a field failed
	// its format check. The rejection carries the first failing field only.
	InvalidField RejectionKind = "invalid_field"

	// DispatchFailed means the submission was valid but a notification send
	// failed. Only surfaced in blocking dispatch mode.
	DispatchFailed RejectionKind = "dispatch_failed"
)

// RejectionError is the structured refusal returned by the validation
// pipeline and, in blocking mode, by the dispatcher.
type RejectionError struct {
	Kind    RejectionKind
	Field   string // set for InvalidField
	Message string // human-readable, safe to return to the caller
}

func (e *RejectionError) Error() string {
	if e.Field != "" {
		return string(e.Kind) + ": " + e.Field
	}
	return string(e.Kind)
}
