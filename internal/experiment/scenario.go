package experiment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/odestep/internal/config"
)

// RunScenario executes the runs of sc in order and stops at the first
// failure, returning the results gathered so far.
func RunScenario(ctx context.Context, sc *config.Scenario, reg *Registry, opts ...Option) ([]*Result, error) {
	results := make([]*Result, 0, len(sc.Runs))

	for i, cfg := range sc.Runs {
		exp := New(cfg, opts...)
		exp.logger = exp.logger.With(zap.String("scenario", sc.Name), zap.Int("run", i+1))

		if err := exp.Setup(reg); err != nil {
			return results, fmt.Errorf("run %d setup: %w", i+1, err)
		}

		res, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		results = append(results, res)
	}

	return results, nil
}
