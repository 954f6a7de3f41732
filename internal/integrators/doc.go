// Package integrators implements explicit fixed-step methods for first-order
// initial value problems dy/dt = f(t, y):
//
//   - [Euler]: first order, one derivative evaluation per step
//   - [Midpoint]: second order Runge-Kutta, two evaluations per step
//   - [RK4]: classical fourth order Runge-Kutta, four evaluations per step
//
// All three share one loop, [Walk]. Starting from (t0, y0) it emits y0, then
// while t < tf it takes a step, advances t by h and emits the new value. The
// last emitted point is the first one with t >= tf, so it may lie slightly
// past tf when t accumulates rounding error.
//
// [SolveEuler], [SolveMidpoint] and [SolveRK4] return the values only;
// [Integrate] also returns the accumulated times.
//
// A step size that is not strictly positive is rejected with
// [dynamo.ErrNonPositiveStep] before f is evaluated. A panic raised by f is
// not recovered.
package integrators
