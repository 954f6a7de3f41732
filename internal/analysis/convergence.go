package analysis

import (
	"context"
	"errors"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
)

var ErrTooFewSteps = errors.New("analysis: at least two step sizes are required")

// Problem is a system with a closed-form solution. Derive and Exact may be
// called from several goroutines at once.
type Problem interface {
	dynamo.System
	dynamo.Solution
}

type Convergence struct {
	Method string
	Steps  []float64
	// Errors[i] is the max-norm error at the last point computed with Steps[i].
	Errors []float64
	// Orders[i] is the observed order between Steps[i] and Steps[i+1].
	Orders []float64
	// Order and Intercept fit log(error) = Intercept + Order*log(h).
	Order     float64
	Intercept float64
}

// Halving returns n step sizes starting at h0, each half the previous one.
func Halving(h0 float64, n int) []float64 {
	hs := make([]float64, n)
	for i := range hs {
		hs[i] = h0
		h0 /= 2
	}
	return hs
}

// ObservedOrder is the order implied by errors e1 at step h1 and e2 at h2.
func ObservedOrder(h1, e1, h2, e2 float64) float64 {
	if e1 <= 0 || e2 <= 0 || h1 == h2 {
		return math.NaN()
	}
	return math.Log(e1/e2) / math.Log(h1/h2)
}

// FinalError integrates sys with s and step h and returns the error at the
// last point.
func FinalError(ctx context.Context, s integrators.Stepper[dynamo.State], sys Problem, y0 dynamo.State, t0, tf, h float64) (float64, error) {
	var (
		tLast float64
		yLast dynamo.State
	)
	err := integrators.Walk(s, sys.Derive, y0, t0, tf, h, func(_ int, t float64, y dynamo.State) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		tLast, yLast = t, y
		return nil
	})
	if err != nil {
		return 0, err
	}
	return yLast.MaxAbsDiff(sys.Exact(tLast, t0, y0)), nil
}

// Study runs s once per step size, concurrently, and fits the order of
// accuracy.
func Study(ctx context.Context, s integrators.Stepper[dynamo.State], sys Problem, y0 dynamo.State, t0, tf float64, hs []float64) (*Convergence, error) {
	if len(hs) < 2 {
		return nil, ErrTooFewSteps
	}

	c := &Convergence{
		Method: s.Name(),
		Steps:  append([]float64(nil), hs...),
		Errors: make([]float64, len(hs)),
		Orders: make([]float64, len(hs)-1),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, h := range hs {
		i, h := i, h
		g.Go(func() error {
			e, err := FinalError(gctx, s, sys, y0, t0, tf, h)
			if err != nil {
				return err
			}
			c.Errors[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	exact := false
	for i := range c.Orders {
		c.Orders[i] = ObservedOrder(hs[i], c.Errors[i], hs[i+1], c.Errors[i+1])
	}
	for _, e := range c.Errors {
		if e == 0 {
			exact = true
		}
	}

	if exact {
		c.Order, c.Intercept = math.NaN(), math.NaN()
		return c, nil
	}

	logH := make([]float64, len(hs))
	logE := make([]float64, len(hs))
	for i := range hs {
		logH[i] = math.Log(hs[i])
		logE[i] = math.Log(c.Errors[i])
	}
	c.Intercept, c.Order = stat.LinearRegression(logH, logE, nil, false)

	return c, nil
}
