package experiment

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Compare runs the same configuration once per method, concurrently, and
// returns the results keyed by method name. Every method is set up before
// any run starts, so a bad method fails the call without side effects.
func Compare(ctx context.Context, reg *Registry, base *Experiment, methods []string) (map[string]*Result, error) {
	exps := make([]*Experiment, len(methods))
	for i, method := range methods {
		cfg := base.cfg.Clone()
		cfg.Method = method

		exp := New(cfg, WithLogger(base.logger.With(zap.String("compare", method))))
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		exps[i] = exp
	}

	results := make([]*Result, len(methods))
	g, gctx := errgroup.WithContext(ctx)
	for i, exp := range exps {
		i, exp := i, exp
		g.Go(func() error {
			res, err := exp.Run(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Result, len(methods))
	for i, method := range methods {
		out[method] = results[i]
	}
	return out, nil
}
