package models

import (
	"fmt"
	"math"

	"github.com/san-kum/odestep/internal/dynamo"
)

const (
	DefaultOmega   = 1.0
	DefaultMass    = 1.0
	DefaultLength  = 1.0
	DefaultDamping = 0.1
	DefaultGravity = 9.81
)

// Oscillator is the undamped harmonic oscillator with state (x, v).
type Oscillator struct {
	Omega float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{Omega: DefaultOmega}
}

func (o *Oscillator) Dim() int { return 2 }

func (o *Oscillator) Derive(t float64, y dynamo.State) dynamo.State {
	return dynamo.State{y[1], -o.Omega * o.Omega * y[0]}
}

func (o *Oscillator) Exact(t, t0 float64, y0 dynamo.State) dynamo.State {
	w := o.Omega
	if w == 0 {
		return dynamo.State{y0[0] + y0[1]*(t-t0), y0[1]}
	}
	s, c := math.Sincos(w * (t - t0))
	return dynamo.State{
		y0[0]*c + y0[1]*s/w,
		-y0[0]*w*s + y0[1]*c,
	}
}

func (o *Oscillator) Energy(y dynamo.State) float64 {
	return 0.5 * (o.Omega*o.Omega*y[0]*y[0] + y[1]*y[1])
}

func (o *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{"omega": o.Omega}
}

func (o *Oscillator) SetParam(name string, value float64) error {
	if name != "omega" {
		return fmt.Errorf("unknown param: %s", name)
	}
	o.Omega = value
	return nil
}

// Pendulum is a damped nonlinear pendulum with state (theta, omega).
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    DefaultMass,
		Length:  DefaultLength,
		Damping: DefaultDamping,
		Gravity: DefaultGravity,
	}
}

func (p *Pendulum) Dim() int { return 2 }

func (p *Pendulum) Derive(t float64, y dynamo.State) dynamo.State {
	theta := y[0]
	omega := y[1]

	alpha := (-p.Damping*omega - p.Mass*p.Gravity*p.Length*math.Sin(theta)) / (p.Mass * p.Length * p.Length)

	return dynamo.State{omega, alpha}
}

func (p *Pendulum) Energy(y dynamo.State) float64 {
	// KE = 0.5 * m * (L*omega)^2
	// PE = m * g * L * (1 - cos(theta))
	v := p.Length * y[1]
	ke := 0.5 * p.Mass * v * v
	pe := p.Mass * p.Gravity * p.Length * (1.0 - math.Cos(y[0]))
	return ke + pe
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":    p.Mass,
		"length":  p.Length,
		"damping": p.Damping,
		"gravity": p.Gravity,
	}
}

func (p *Pendulum) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		p.Mass = value
	case "length":
		p.Length = value
	case "damping":
		p.Damping = value
	case "gravity":
		p.Gravity = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
