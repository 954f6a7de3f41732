package config

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel    = "linear"
	DefaultMethod   = "rk4"
	DefaultT0       = 0.0
	DefaultTf       = 1.0
	DefaultH        = 0.1
	DefaultMaxSteps = 1_000_000
)

var validate = validator.New()

// Config describes a single integration run. A zero MaxSteps means the run
// is not capped.
type Config struct {
	Model    string             `yaml:"model" validate:"required"`
	Method   string             `yaml:"method" validate:"required,oneof=euler midpoint rk2 rk4"`
	T0       float64            `yaml:"t0"`
	Tf       float64            `yaml:"tf"`
	H        float64            `yaml:"h" validate:"gt=0"`
	MaxSteps int                `yaml:"max_steps" validate:"gte=0"`
	Y0       []float64          `yaml:"y0"`
	Params   map[string]float64 `yaml:"params,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:    DefaultModel,
		Method:   DefaultMethod,
		T0:       DefaultT0,
		Tf:       DefaultTf,
		H:        DefaultH,
		MaxSteps: DefaultMaxSteps,
		Y0:       []float64{0},
	}
}

// Parse overlays a yaml document on DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Steps is the number of steps the run will take, ignoring rounding in the
// accumulated time. It is zero when Tf <= T0 and saturates at math.MaxInt
// when the span is too long to count.
func (c *Config) Steps() int {
	if c.Tf <= c.T0 || c.H <= 0 {
		return 0
	}
	q := (c.Tf - c.T0) / c.H
	if math.IsInf(q, 0) || math.IsNaN(q) || q >= math.MaxInt32 {
		return math.MaxInt
	}
	n := int(q)
	if c.T0+float64(n)*c.H < c.Tf {
		n++
	}
	return n
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Y0 = append([]float64(nil), c.Y0...)
	if c.Params != nil {
		cp.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			cp.Params[k] = v
		}
	}
	return &cp
}
