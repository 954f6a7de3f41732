// Package dynamo provides the value types fixed-step integrators operate on.
//
// Integrators are generic over any type that can be added to itself and
// scaled by a float64, which is all an explicit Runge-Kutta step needs:
//
//   - [Vector]: the arithmetic constraint (y + k, h * k)
//   - [Func]: the right-hand side of dy/dt = f(t, y)
//   - [Scalar]: a float64 that satisfies [Vector]
//   - [State]: a []float64 state vector backed by gonum/floats kernels
//   - [Vec]: a gonum *mat.VecDense wrapped to satisfy [Vector]
//
// # Example
//
//	f := func(t float64, y dynamo.Scalar) dynamo.Scalar { return dynamo.Scalar(t) + y }
//	ys, err := integrators.SolveRK4(f, 0, 0, 1, 0.1)
//
// Values are treated as immutable: Add and Scale always return a new value
// and never modify their receiver or argument.
package dynamo
