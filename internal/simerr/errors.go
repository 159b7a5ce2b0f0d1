// Package simerr defines the run's error taxonomy: sentinel errors for
// the three categories spec.md §7 distinguishes, plus a context-carrying
// wrapper for attaching the run state a startup or per-step failure
// occurred at.
package simerr

import "errors"

// Sentinel errors. Wrap these with fmt.Errorf("%w: ...", ErrX, ...) at
// the call site, or with RunError for the (step, etime) the failure
// occurred at.
var (
	// ErrConfig indicates a configuration error: non-positive extent,
	// unknown data_spec, or a NaN output_freq. Caught at startup.
	ErrConfig = errors.New("miniweather: invalid configuration")

	// ErrRankLayout indicates the rank count exceeds nx_glob. Caught at
	// startup.
	ErrRankLayout = errors.New("miniweather: invalid rank layout")

	// ErrWriter indicates the output writer failed to open, append to,
	// or close the run's NetCDF file. Caught per-step.
	ErrWriter = errors.New("miniweather: output writer failed")
)

// RunError wraps a sentinel error with the step and simulated time at
// which it was observed, so a caller reporting a per-step failure can
// include run context without constructing a new error string by hand.
type RunError struct {
	Step    int
	Etime   float64
	Wrapped error
}

func (e *RunError) Error() string {
	return e.Wrapped.Error()
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
