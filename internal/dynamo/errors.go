package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for integration operations.
var (
	// ErrNonPositiveStep indicates a step size that is zero, negative or NaN.
	ErrNonPositiveStep = errors.New("dynamo: step size must be positive")

	// ErrNilDerivative indicates a missing right-hand side function.
	ErrNilDerivative = errors.New("dynamo: derivative function is nil")

	// ErrUnknownMethod indicates a stepper name that is not registered.
	ErrUnknownMethod = errors.New("dynamo: unknown integration method")

	// ErrUnknownModel indicates a model name that is not registered.
	ErrUnknownModel = errors.New("dynamo: unknown model")

	// ErrStepLimit indicates a run needed more steps than it was allowed.
	ErrStepLimit = errors.New("dynamo: step limit exceeded")

	// ErrInvalidState indicates a state with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates an initial state of the wrong length.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and model")
)

// RunError wraps an error with the point of the run it occurred at.
type RunError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *RunError) Unwrap() error {
	return e.Wrapped
}
