package integrators

import "github.com/san-kum/odestep/internal/dynamo"

// Midpoint is the two-stage Runge-Kutta method that samples the slope at the
// middle of the step.
type Midpoint[T dynamo.Vector[T]] struct{}

func NewMidpoint[T dynamo.Vector[T]]() *Midpoint[T] {
	return &Midpoint[T]{}
}

func (m *Midpoint[T]) Name() string { return "midpoint" }
func (m *Midpoint[T]) Order() int   { return 2 }
func (m *Midpoint[T]) Stages() int  { return 2 }

func (m *Midpoint[T]) Step(f dynamo.Func[T], t float64, y T, h float64) T {
	k1 := f(t, y).Scale(h)
	k2 := f(t+0.5*h, y.Add(k1.Scale(0.5))).Scale(h)
	return y.Add(k2)
}
