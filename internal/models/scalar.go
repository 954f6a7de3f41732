package models

import (
	"fmt"
	"math"

	"github.com/san-kum/odestep/internal/dynamo"
)

const (
	DefaultRate     = 1.0
	DefaultConstant = 1.0
)

// Exponential is y' = Rate * y.
type Exponential struct {
	Rate float64
}

func NewExponential() *Exponential {
	return &Exponential{Rate: DefaultRate}
}

func (e *Exponential) Dim() int { return 1 }

func (e *Exponential) Derive(t float64, y dynamo.State) dynamo.State {
	return dynamo.State{e.Rate * y[0]}
}

func (e *Exponential) Exact(t, t0 float64, y0 dynamo.State) dynamo.State {
	return dynamo.State{y0[0] * math.Exp(e.Rate*(t-t0))}
}

func (e *Exponential) GetParams() map[string]float64 {
	return map[string]float64{"rate": e.Rate}
}

func (e *Exponential) SetParam(name string, value float64) error {
	if name != "rate" {
		return fmt.Errorf("unknown param: %s", name)
	}
	e.Rate = value
	return nil
}

// Linear is y' = t + y.
type Linear struct{}

func NewLinear() *Linear {
	return &Linear{}
}

func (l *Linear) Dim() int { return 1 }

func (l *Linear) Derive(t float64, y dynamo.State) dynamo.State {
	return dynamo.State{t + y[0]}
}

// Exact uses y(t) = (y0 + t0 + 1) e^(t-t0) - t - 1.
func (l *Linear) Exact(t, t0 float64, y0 dynamo.State) dynamo.State {
	return dynamo.State{(y0[0]+t0+1)*math.Exp(t-t0) - t - 1}
}

// Constant is y' = Value.
type Constant struct {
	Value float64
}

func NewConstant() *Constant {
	return &Constant{Value: DefaultConstant}
}

func (c *Constant) Dim() int { return 1 }

func (c *Constant) Derive(t float64, y dynamo.State) dynamo.State {
	return dynamo.State{c.Value}
}

func (c *Constant) Exact(t, t0 float64, y0 dynamo.State) dynamo.State {
	return dynamo.State{y0[0] + c.Value*(t-t0)}
}

func (c *Constant) GetParams() map[string]float64 {
	return map[string]float64{"value": c.Value}
}

func (c *Constant) SetParam(name string, value float64) error {
	if name != "value" {
		return fmt.Errorf("unknown param: %s", name)
	}
	c.Value = value
	return nil
}

// MaxPolynomialDegree bounds the coefficient index accepted by SetParam.
const MaxPolynomialDegree = 64

// Polynomial is y' = Coeffs[0] + Coeffs[1] t + Coeffs[2] t^2 + ...
// The right-hand side does not depend on y.
type Polynomial struct {
	Coeffs []float64
}

// NewPolynomial returns y' = 2t + 1.
func NewPolynomial() *Polynomial {
	return &Polynomial{Coeffs: []float64{1, 2}}
}

func (p *Polynomial) Dim() int { return 1 }

func (p *Polynomial) Derive(t float64, y dynamo.State) dynamo.State {
	sum := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		sum = sum*t + p.Coeffs[i]
	}
	return dynamo.State{sum}
}

func (p *Polynomial) antiderivative(t float64) float64 {
	sum := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		sum = sum*t + p.Coeffs[i]/float64(i+1)
	}
	return sum * t
}

func (p *Polynomial) Exact(t, t0 float64, y0 dynamo.State) dynamo.State {
	return dynamo.State{y0[0] + p.antiderivative(t) - p.antiderivative(t0)}
}

func (p *Polynomial) GetParams() map[string]float64 {
	params := make(map[string]float64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		params[fmt.Sprintf("c%d", i)] = c
	}
	return params
}

// SetParam sets coefficient ck by name, growing Coeffs as needed.
func (p *Polynomial) SetParam(name string, value float64) error {
	var k int
	if _, err := fmt.Sscanf(name, "c%d", &k); err != nil || k < 0 || k > MaxPolynomialDegree || fmt.Sprintf("c%d", k) != name {
		return fmt.Errorf("unknown param: %s", name)
	}
	for len(p.Coeffs) <= k {
		p.Coeffs = append(p.Coeffs, 0)
	}
	p.Coeffs[k] = value
	return nil
}
