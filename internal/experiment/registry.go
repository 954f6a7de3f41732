package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/odestep/internal/dynamo"
	"github.com/san-kum/odestep/internal/integrators"
	"github.com/san-kum/odestep/internal/models"
)

type Registry struct {
	models map[string]func() dynamo.System
}

func NewRegistry() *Registry {
	r := &Registry{
		models: make(map[string]func() dynamo.System),
	}

	r.models["exponential"] = func() dynamo.System { return models.NewExponential() }
	r.models["linear"] = func() dynamo.System { return models.NewLinear() }
	r.models["constant"] = func() dynamo.System { return models.NewConstant() }
	r.models["polynomial"] = func() dynamo.System { return models.NewPolynomial() }
	r.models["oscillator"] = func() dynamo.System { return models.NewOscillator() }
	r.models["pendulum"] = func() dynamo.System { return models.NewPendulum() }

	return r
}

// Register adds or replaces a model constructor.
func (r *Registry) Register(name string, fn func() dynamo.System) {
	r.models[name] = fn
}

func (r *Registry) GetModel(name string) (dynamo.System, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownModel, name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (integrators.Stepper[dynamo.State], error) {
	return integrators.Lookup[dynamo.State](name)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	return integrators.Methods()
}
