package integrators

import "github.com/san-kum/odestep/internal/dynamo"

type RK4[T dynamo.Vector[T]] struct{}

func NewRK4[T dynamo.Vector[T]]() *RK4[T] {
	return &RK4[T]{}
}

func (r *RK4[T]) Name() string { return "rk4" }
func (r *RK4[T]) Order() int   { return 4 }
func (r *RK4[T]) Stages() int  { return 4 }

func (r *RK4[T]) Step(f dynamo.Func[T], t float64, y T, h float64) T {
	halfH := 0.5 * h

	k1 := f(t, y).Scale(h)
	k2 := f(t+halfH, y.Add(k1.Scale(0.5))).Scale(h)
	k3 := f(t+halfH, y.Add(k2.Scale(0.5))).Scale(h)
	k4 := f(t+h, y.Add(k3)).Scale(h)

	sum := k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
	return y.Add(sum.Scale(1.0 / 6.0))
}
