package integrators

import (
	"fmt"
	"strings"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Methods lists the canonical stepper names accepted by Lookup.
func Methods() []string {
	return []string{"euler", "midpoint", "rk4"}
}

// Lookup returns a stepper by name. "rk2" is accepted as an alias for
// "midpoint"; names are case-insensitive.
func Lookup[T dynamo.Vector[T]](name string) (Stepper[T], error) {
	switch strings.ToLower(name) {
	case "euler":
		return NewEuler[T](), nil
	case "midpoint", "rk2":
		return NewMidpoint[T](), nil
	case "rk4":
		return NewRK4[T](), nil
	}
	return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownMethod, name)
}
