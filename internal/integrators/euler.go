package integrators

import "github.com/san-kum/odestep/internal/dynamo"

type Euler[T dynamo.Vector[T]] struct{}

func NewEuler[T dynamo.Vector[T]]() *Euler[T] {
	return &Euler[T]{}
}

func (e *Euler[T]) Name() string { return "euler" }
func (e *Euler[T]) Order() int   { return 1 }
func (e *Euler[T]) Stages() int  { return 1 }

func (e *Euler[T]) Step(f dynamo.Func[T], t float64, y T, h float64) T {
	return y.Add(f(t, y).Scale(h))
}
