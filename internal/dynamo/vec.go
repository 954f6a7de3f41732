package dynamo

import "gonum.org/v1/gonum/mat"

// Vec adapts a gonum dense vector to Vector so integrators can run directly
// on mat types. The wrapped vector is never modified in place.
type Vec struct {
	v *mat.VecDense
}

// NewVec copies data into a new Vec. data must not be empty.
func NewVec(data []float64) Vec {
	c := make([]float64, len(data))
	copy(c, data)
	return Vec{v: mat.NewVecDense(len(c), c)}
}

// WrapVec wraps v without copying it.
func WrapVec(v *mat.VecDense) Vec {
	return Vec{v: v}
}

func (v Vec) Add(other Vec) Vec {
	var r mat.VecDense
	r.AddVec(v.v, other.v)
	return Vec{v: &r}
}

func (v Vec) Scale(factor float64) Vec {
	var r mat.VecDense
	r.ScaleVec(factor, v.v)
	return Vec{v: &r}
}

func (v Vec) Len() int            { return v.v.Len() }
func (v Vec) AtVec(i int) float64 { return v.v.AtVec(i) }

// Dense returns the underlying gonum vector.
func (v Vec) Dense() *mat.VecDense { return v.v }

// State copies the elements into a State.
func (v Vec) State() State {
	s := make(State, v.v.Len())
	for i := range s {
		s[i] = v.v.AtVec(i)
	}
	return s
}
