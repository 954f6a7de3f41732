package dynamo

// System is an ODE right-hand side over State vectors.
type System interface {
	Derive(t float64, y State) State
	Dim() int
}

// Solution is implemented by systems with a closed-form solution.
type Solution interface {
	// Exact returns y(t) for the initial value y0 at t0.
	Exact(t, t0 float64, y0 State) State
}

type Hamiltonian interface {
	Energy(y State) float64
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
