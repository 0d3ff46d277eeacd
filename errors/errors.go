package errors

import "fmt"

// ConfigError wraps a specific error with the profile or request field that
// failed validation.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ItemError describes a single malformed input item that was filtered out of
// a run. It is reported on the response but never aborts the run.
type ItemError struct {
	Index int
	Field string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("initial backlog item %d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Define specific error types for better error handling
var (
	ErrNegativeRate         = fmt.Errorf("rate must not be negative")
	ErrInvalidCapacityBound = fmt.Errorf("max backlog capacity must be positive when set")
	ErrUnknownStrategy      = fmt.Errorf("unknown overflow strategy")
	ErrUnknownPriority      = fmt.Errorf("unknown priority")
	ErrUnknownComplexity    = fmt.Errorf("unknown complexity")
	ErrUnknownStatus        = fmt.Errorf("unknown item status")
	ErrMisalignedInputs     = fmt.Errorf("daily inputs must cover every simulated day")
	ErrDateOrder            = fmt.Errorf("end date must not precede start date")
	ErrNegativeCapacity     = fmt.Errorf("capacity hours must not be negative")
	ErrNegativeDemand       = fmt.Errorf("demand counts must not be negative")
	ErrMissingField         = fmt.Errorf("required field is missing")
	ErrInternalInvariant    = fmt.Errorf("internal invariant violated")
)
