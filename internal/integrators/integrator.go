package integrators

import (
	"math"

	"github.com/san-kum/odestep/internal/dynamo"
)

// Stepper advances a solution by one fixed step.
type Stepper[T any] interface {
	// Step returns the value at t+h given the value y at t.
	Step(f dynamo.Func[T], t float64, y T, h float64) T
	Name() string
	// Order is the global order of accuracy.
	Order() int
	// Stages is the number of derivative evaluations per step.
	Stages() int
}

// Trajectory pairs every computed value with the time it belongs to.
type Trajectory[T any] struct {
	Times  []float64
	Values []T
}

func (tr *Trajectory[T]) Len() int {
	return len(tr.Values)
}

// Final returns the last time and value of the trajectory.
func (tr *Trajectory[T]) Final() (float64, T) {
	n := len(tr.Values) - 1
	return tr.Times[n], tr.Values[n]
}

// maxPrealloc bounds the capacity reserved up front for a trajectory.
const maxPrealloc = 1 << 20

func validate[T any](f dynamo.Func[T], h float64) error {
	if f == nil {
		return dynamo.ErrNilDerivative
	}
	if !(h > 0) {
		return dynamo.ErrNonPositiveStep
	}
	return nil
}

func capacityHint(t0, tf, h float64) int {
	if !(tf > t0) {
		return 1
	}
	est := math.Ceil((tf - t0) / h)
	if est > maxPrealloc || math.IsNaN(est) {
		return maxPrealloc
	}
	return int(est) + 2
}

// Walk runs the fixed-step loop from (t0, y0) and calls visit for every
// emitted point, y0 included, with its index and accumulated time. An error
// returned by visit stops the walk and is returned unchanged.
func Walk[T any](s Stepper[T], f dynamo.Func[T], y0 T, t0, tf, h float64, visit func(i int, t float64, y T) error) error {
	if err := validate(f, h); err != nil {
		return err
	}

	t := t0
	y := y0
	if err := visit(0, t, y); err != nil {
		return err
	}

	for i := 1; t < tf; i++ {
		y = s.Step(f, t, y, h)
		t += h
		if err := visit(i, t, y); err != nil {
			return err
		}
	}
	return nil
}

// Integrate solves the problem with s and returns times and values.
func Integrate[T any](s Stepper[T], f dynamo.Func[T], y0 T, t0, tf, h float64) (*Trajectory[T], error) {
	n := 1
	if h > 0 {
		n = capacityHint(t0, tf, h)
	}
	tr := &Trajectory[T]{
		Times:  make([]float64, 0, n),
		Values: make([]T, 0, n),
	}

	err := Walk(s, f, y0, t0, tf, h, func(_ int, t float64, y T) error {
		tr.Times = append(tr.Times, t)
		tr.Values = append(tr.Values, y)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tr, nil
}

func solve[T any](s Stepper[T], f dynamo.Func[T], y0 T, t0, tf, h float64) ([]T, error) {
	tr, err := Integrate(s, f, y0, t0, tf, h)
	if err != nil {
		return nil, err
	}
	return tr.Values, nil
}

// SolveEuler integrates with the explicit Euler method and returns the value
// at t0, t0+h, t0+2h, ... up to the first time not below tf.
func SolveEuler[T dynamo.Vector[T]](f dynamo.Func[T], y0 T, t0, tf, h float64) ([]T, error) {
	return solve[T](NewEuler[T](), f, y0, t0, tf, h)
}

// SolveMidpoint is SolveEuler with the second order midpoint method.
func SolveMidpoint[T dynamo.Vector[T]](f dynamo.Func[T], y0 T, t0, tf, h float64) ([]T, error) {
	return solve[T](NewMidpoint[T](), f, y0, t0, tf, h)
}

// SolveRK4 is SolveEuler with the classical fourth order Runge-Kutta method.
func SolveRK4[T dynamo.Vector[T]](f dynamo.Func[T], y0 T, t0, tf, h float64) ([]T, error) {
	return solve[T](NewRK4[T](), f, y0, t0, tf, h)
}
