package experiment

import (
	"context"
	"errors"
	"math"
	"runtime"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/odestep/internal/config"
	"github.com/san-kum/odestep/internal/dynamo"
)

type recorder struct {
	steps []int
	times []float64
}

func (r *recorder) OnStep(i int, t float64, y dynamo.State) {
	r.steps = append(r.steps, i)
	r.times = append(r.times, t)
}

type nanSystem struct{}

func (nanSystem) Dim() int { return 1 }
func (nanSystem) Derive(t float64, y dynamo.State) dynamo.State {
	if t > 0.3 {
		return dynamo.State{math.NaN()}
	}
	return dynamo.State{1}
}

var _ = Describe("Registry", func() {
	var reg *Registry

	BeforeEach(func() {
		reg = NewRegistry()
	})

	It("lists the built-in models", func() {
		Expect(reg.ListModels()).To(Equal([]string{
			"constant", "exponential", "linear", "oscillator", "pendulum", "polynomial",
		}))
	})

	It("lists the fixed-step methods", func() {
		Expect(reg.ListIntegrators()).To(ConsistOf("euler", "midpoint", "rk4"))
	})

	It("rejects unknown names", func() {
		_, err := reg.GetModel("lorenz")
		Expect(errors.Is(err, dynamo.ErrUnknownModel)).To(BeTrue())

		_, err = reg.GetIntegrator("rk45")
		Expect(errors.Is(err, dynamo.ErrUnknownMethod)).To(BeTrue())
	})

	It("returns a fresh model on every lookup", func() {
		a, err := reg.GetModel("oscillator")
		Expect(err).NotTo(HaveOccurred())
		b, err := reg.GetModel("oscillator")
		Expect(err).NotTo(HaveOccurred())
		Expect(a).NotTo(BeIdenticalTo(b))
	})
})

var _ = Describe("Experiment", func() {
	var (
		reg *Registry
		cfg *config.Config
		ctx context.Context
	)

	BeforeEach(func() {
		reg = NewRegistry()
		cfg = config.DefaultConfig()
		ctx = context.Background()
	})

	Describe("Setup", func() {
		It("rejects an invalid step size", func() {
			cfg.H = 0
			Expect(New(cfg).Setup(reg)).To(HaveOccurred())
		})

		It("rejects a state of the wrong dimension", func() {
			cfg.Model = "oscillator"
			cfg.Y0 = []float64{1}
			err := New(cfg).Setup(reg)
			Expect(errors.Is(err, dynamo.ErrDimensionMismatch)).To(BeTrue())
		})

		It("rejects params for a model without any", func() {
			cfg.Params = map[string]float64{"rate": 2}
			Expect(New(cfg).Setup(reg)).To(MatchError(ContainSubstring("not configurable")))
		})

		It("rejects unknown params", func() {
			cfg.Model = "exponential"
			cfg.Y0 = []float64{1}
			cfg.Params = map[string]float64{"speed": 2}
			Expect(New(cfg).Setup(reg)).To(MatchError(ContainSubstring("unknown param")))
		})

		It("does not share the caller's config", func() {
			exp := New(cfg)
			cfg.H = -1
			Expect(exp.Setup(reg)).To(Succeed())
			Expect(exp.Config().H).To(Equal(config.DefaultH))
		})
	})

	Describe("Run", func() {
		It("fails before Setup", func() {
			_, err := New(cfg).Run(ctx)
			Expect(err).To(MatchError(ErrNotSetup))
		})

		It("integrates the default problem against its exact solution", func() {
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Trajectory.Values[0]).To(Equal(dynamo.State{0}))
			Expect(res.Trajectory.Times[0]).To(Equal(0.0))
			Expect(res.Steps).To(Equal(res.Trajectory.Len() - 1))
			Expect(res.Steps).To(BeNumerically(">=", 10))
			Expect(res.Evaluations).To(Equal(4 * res.Steps))
			Expect(res.HasExact).To(BeTrue())
			Expect(res.MaxError).To(BeNumerically("<", 1e-4))
			Expect(res.FinalError).To(BeNumerically("<=", res.MaxError))

			tf, _ := res.Trajectory.Final()
			Expect(tf).To(BeNumerically(">=", cfg.Tf))
		})

		It("applies model params", func() {
			cfg = config.GetPreset("exponential", "decay")
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, y := res.Trajectory.Final()
			Expect(y[0]).To(BeNumerically("<", 1e-3))
			Expect(res.MaxError).To(BeNumerically("<", 2e-3))
		})

		It("returns only y0 for an empty interval", func() {
			cfg.T0, cfg.Tf = 1, 1
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Trajectory.Len()).To(Equal(1))
			Expect(res.Steps).To(Equal(0))
			Expect(res.Evaluations).To(Equal(0))
		})

		It("stops at the step limit with a partial result", func() {
			cfg.MaxSteps = 5
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(errors.Is(err, dynamo.ErrStepLimit)).To(BeTrue())

			var runErr *dynamo.RunError
			Expect(errors.As(err, &runErr)).To(BeTrue())
			Expect(runErr.Step).To(Equal(6))
			Expect(res.Trajectory.Len()).To(Equal(6))
		})

		It("bounds an unbounded interval by the step limit", func() {
			for _, doc := range []string{
				"tf: .inf\nmax_steps: 10",
				"tf: 1e20\nh: 1\nmax_steps: 10",
			} {
				cfg, err := config.Parse([]byte(doc))
				Expect(err).NotTo(HaveOccurred())
				exp := New(cfg)
				Expect(exp.Setup(reg)).To(Succeed())

				res, err := exp.Run(ctx)
				Expect(errors.Is(err, dynamo.ErrStepLimit)).To(BeTrue(), doc)
				Expect(res.Trajectory.Len()).To(Equal(11), doc)
			}
		})

		It("honours a canceled context", func() {
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			canceled, cancel := context.WithCancel(ctx)
			cancel()

			res, err := exp.Run(canceled)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
			Expect(res.Trajectory.Len()).To(Equal(0))
			Expect(res.Steps).To(Equal(0))
		})

		It("detects an invalid state", func() {
			reg.Register("nan", func() dynamo.System { return nanSystem{} })
			cfg.Model = "nan"
			exp := New(cfg)
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(errors.Is(err, dynamo.ErrInvalidState)).To(BeTrue())
			Expect(res.HasExact).To(BeFalse())
			for _, y := range res.Trajectory.Values {
				Expect(y.IsValid()).To(BeTrue())
			}
		})

		It("notifies observers of every point", func() {
			rec := &recorder{}
			exp := New(cfg, WithObserver(rec))
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.times).To(Equal(res.Trajectory.Times))
			Expect(rec.steps[0]).To(Equal(0))
			Expect(rec.steps).To(HaveLen(res.Trajectory.Len()))
		})

		It("tracks energy drift for Hamiltonian models", func() {
			exp := New(config.GetPreset("oscillator", "period"))
			Expect(exp.Setup(reg)).To(Succeed())

			res, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.EnergyDrift).To(BeNumerically("<", 1e-8))
			Expect(res.MaxError).To(BeNumerically("<", 1e-8))
		})

		It("logs the completed run", func() {
			core, logs := observer.New(zapcore.DebugLevel)
			exp := New(cfg, WithLogger(zap.New(core)))
			Expect(exp.Setup(reg)).To(Succeed())

			_, err := exp.Run(ctx)
			Expect(err).NotTo(HaveOccurred())

			Expect(logs.FilterMessage("starting run").Len()).To(Equal(1))
			done := logs.FilterMessage("run complete").All()
			Expect(done).To(HaveLen(1))
			Expect(done[0].ContextMap()).To(HaveKeyWithValue("model", "linear"))
			Expect(done[0].ContextMap()).To(HaveKey("max_error"))
		})
	})

	Describe("Compare", func() {
		It("runs every method on the same problem", func() {
			exp := New(cfg)
			results, err := Compare(ctx, reg, exp, []string{"euler", "midpoint", "rk4"})
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(3))

			Expect(results["midpoint"].MaxError).To(BeNumerically("<", results["euler"].MaxError))
			Expect(results["rk4"].MaxError).To(BeNumerically("<", results["midpoint"].MaxError))
			Expect(results["euler"].Evaluations).To(Equal(results["euler"].Steps))
			Expect(results["midpoint"].Evaluations).To(Equal(2 * results["midpoint"].Steps))
		})

		It("fails on an unknown method", func() {
			_, err := Compare(ctx, reg, New(cfg), []string{"rk4", "verlet"})
			Expect(err).To(MatchError(ContainSubstring("Method")))
		})

		It("starts no run when a later method is invalid", func() {
			cfg.Tf = 1e6
			cfg.H = 0.001
			cfg.MaxSteps = 0
			before := runtime.NumGoroutine()

			_, err := Compare(ctx, reg, New(cfg), []string{"rk4", "verlet"})
			Expect(err).To(MatchError(ContainSubstring("Method")))
			Consistently(runtime.NumGoroutine).
				WithTimeout(200 * time.Millisecond).
				Should(BeNumerically("<=", before))
		})
	})
})
