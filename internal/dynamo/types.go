package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is the arithmetic an explicit fixed-step method needs from its
// value type: addition and multiplication by a scalar. Division by a scalar
// d is expressed as Scale(1/d).
type Vector[T any] interface {
	Add(other T) T
	Scale(factor float64) T
}

// Func is the right-hand side of the ODE dy/dt = f(t, y).
type Func[T any] func(t float64, y T) T

// Scalar is a float64 value that satisfies Vector.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar     { return s + other }
func (s Scalar) Scale(factor float64) Scalar { return s * Scalar(factor) }

// State is a real-valued state vector. Arithmetic between states requires
// equal lengths and panics otherwise.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, 2)
}

func (s State) Add(other State) State {
	return floats.AddTo(make([]float64, len(s)), s, other)
}

func (s State) Scale(factor float64) State {
	return floats.ScaleTo(make([]float64, len(s)), factor, s)
}

func (s State) Sub(other State) State {
	return floats.SubTo(make([]float64, len(s)), s, other)
}

// MaxAbsDiff returns the infinity norm of s - other.
func (s State) MaxAbsDiff(other State) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Distance(s, other, math.Inf(1))
}
