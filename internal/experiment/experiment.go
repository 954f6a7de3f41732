package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
)

var ErrNotSetup = errors.New("experiment: not set up")

const maxPrealloc = 1 << 16

// Observer is notified of every point a run emits, y0 included.
type Observer interface {
	OnStep(i int, t float64, y dynamo.State)
}

type Result struct {
	Trajectory *integrators.Trajectory[dynamo.State]
	// Steps excludes the initial point.
	Steps       int
	Evaluations int
	// MaxError and FinalError are only meaningful when HasExact is set.
	HasExact    bool
	MaxError    float64
	FinalError  float64
	EnergyDrift float64
	Elapsed     time.Duration
}

type Option func(*Experiment)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Experiment) {
		e.logger = logger
	}
}

func WithObserver(o Observer) Option {
	return func(e *Experiment) {
		e.observers = append(e.observers, o)
	}
}

type Experiment struct {
	cfg       *config.Config
	sys       dynamo.System
	stepper   integrators.Stepper[dynamo.State]
	logger    *zap.Logger
	observers []Observer
}

func New(cfg *config.Config, opts ...Option) *Experiment {
	e := &Experiment{
		cfg:    cfg.Clone(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Setup validates the configuration and resolves the model and method.
func (e *Experiment) Setup(reg *Registry) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	sys, err := reg.GetModel(e.cfg.Model)
	if err != nil {
		return err
	}

	if len(e.cfg.Params) > 0 {
		c, ok := sys.(dynamo.Configurable)
		if !ok {
			return fmt.Errorf("model %s is not configurable", e.cfg.Model)
		}
		for name, value := range e.cfg.Params {
			if err := c.SetParam(name, value); err != nil {
				return fmt.Errorf("model %s: %w", e.cfg.Model, err)
			}
		}
	}

	if len(e.cfg.Y0) != sys.Dim() {
		return fmt.Errorf("%w: y0 has %d entries, model %s needs %d",
			dynamo.ErrDimensionMismatch, len(e.cfg.Y0), e.cfg.Model, sys.Dim())
	}

	stepper, err := reg.GetIntegrator(e.cfg.Method)
	if err != nil {
		return err
	}

	e.sys = sys
	e.stepper = stepper
	return nil
}

// Run integrates the configured problem. When the run stops early the
// partial result is returned together with a *dynamo.RunError.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.sys == nil || e.stepper == nil {
		return nil, ErrNotSetup
	}

	cfg := e.cfg
	log := e.logger.With(
		zap.String("model", cfg.Model),
		zap.String("method", e.stepper.Name()),
		zap.Float64("h", cfg.H),
	)

	capacity := maxPrealloc
	if n := cfg.Steps(); n < maxPrealloc {
		capacity = n + 1
	}
	if cfg.MaxSteps > 0 && cfg.MaxSteps < capacity {
		capacity = cfg.MaxSteps + 1
	}
	res := &Result{
		Trajectory: &integrators.Trajectory[dynamo.State]{
			Times:  make([]float64, 0, capacity),
			Values: make([]dynamo.State, 0, capacity),
		},
	}

	exact, hasExact := e.sys.(dynamo.Solution)
	res.HasExact = hasExact

	evals := 0
	f := func(t float64, y dynamo.State) dynamo.State {
		evals++
		return e.sys.Derive(t, y)
	}

	x0 := dynamo.State(cfg.Y0).Clone()

	log.Debug("starting run",
		zap.Float64("t0", cfg.T0),
		zap.Float64("tf", cfg.Tf),
		zap.Int("expected_steps", cfg.Steps()),
	)
	start := time.Now()

	err := integrators.Walk(e.stepper, f, x0, cfg.T0, cfg.Tf, cfg.H, func(i int, t float64, y dynamo.State) error {
		if err := ctx.Err(); err != nil {
			return &dynamo.RunError{Step: i, Time: t, Wrapped: err}
		}
		if cfg.MaxSteps > 0 && i > cfg.MaxSteps {
			return &dynamo.RunError{Step: i, Time: t, Wrapped: dynamo.ErrStepLimit}
		}
		if !y.IsValid() {
			return &dynamo.RunError{Step: i, Time: t, Wrapped: dynamo.ErrInvalidState}
		}

		res.Trajectory.Times = append(res.Trajectory.Times, t)
		res.Trajectory.Values = append(res.Trajectory.Values, y)

		if hasExact {
			d := y.MaxAbsDiff(exact.Exact(t, cfg.T0, x0))
			res.MaxError = math.Max(res.MaxError, d)
			res.FinalError = d
		}

		for _, o := range e.observers {
			o.OnStep(i, t, y)
		}
		return nil
	})

	res.Elapsed = time.Since(start)
	res.Steps = max(res.Trajectory.Len()-1, 0)
	res.Evaluations = evals

	if h, ok := e.sys.(dynamo.Hamiltonian); ok && res.Trajectory.Len() > 0 {
		initial := h.Energy(res.Trajectory.Values[0])
		_, last := res.Trajectory.Final()
		if initial != 0 {
			res.EnergyDrift = math.Abs(h.Energy(last)-initial) / math.Abs(initial)
		}
	}

	if err != nil {
		log.Warn("run stopped", zap.Int("steps", res.Steps), zap.Error(err))
		return res, err
	}

	fields := []zap.Field{
		zap.Int("steps", res.Steps),
		zap.Int("evaluations", res.Evaluations),
		zap.Duration("elapsed", res.Elapsed),
	}
	if hasExact {
		fields = append(fields, zap.Float64("max_error", res.MaxError))
	}
	log.Info("run complete", fields...)

	return res, nil
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
