// Package models provides reference initial value problems.
//
// Each model implements [dynamo.System]. Models with a closed-form solution
// also implement [dynamo.Solution], which makes them suitable for measuring
// the error of an integrator:
//
//   - [Exponential]: y' = k y
//   - [Linear]: y' = t + y
//   - [Constant]: y' = c
//   - [Polynomial]: y' = c0 + c1 t + c2 t^2 + ...
//   - [Oscillator]: x'' = -w^2 x as a first-order pair
//
// [Pendulum] has no closed form and is only checked through
// [dynamo.Hamiltonian].
package models
