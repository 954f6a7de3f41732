// Package analysis measures the accuracy of fixed-step integrators.
//
// [Study] integrates a problem with a known solution at several step sizes
// and reports the error at the final point of each run. For a method of
// order p the error behaves like C h^p, so the slope of log(error) against
// log(h) estimates p:
//
//	hs := analysis.Halving(0.125, 4)
//	c, err := analysis.Study(ctx, integrators.NewRK4[dynamo.State](), models.NewExponential(), dynamo.State{1}, 0, 1, hs)
//	// c.Order is close to 4
//
// # Exact Methods
//
// When a method reproduces the solution exactly, the errors are zero and
// the observed orders are NaN.
package analysis
