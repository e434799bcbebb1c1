package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"corresponding-generator/internal/analyze"
	"corresponding-generator/internal/config"
	"corresponding-generator/internal/gen"
	"corresponding-generator/internal/logger"
	"corresponding-generator/internal/plan"
)

// resolvePatterns picks the package patterns to work on: the command line
// arguments, else the configured scopes, else the current directory.
func resolvePatterns(cfg *config.File, args []string) []string {
	if len(args) > 0 {
		return args
	}

	if patterns := cfg.Patterns(); len(patterns) > 0 {
		return patterns
	}

	return []string{"."}
}

// loadScopes loads every pattern with its own exclusions. A package matched
// by several patterns is kept once, with the options of the first.
func loadScopes(cfg *config.File, patterns []string, log logger.Logger) ([]*analyze.Scope, error) {
	var scopes []*analyze.Scope

	seen := make(map[string]bool)

	for _, pattern := range patterns {
		loaded, err := analyze.NewAnalyzer(cfg.AnalyzeOptions(pattern)).LoadPackages(pattern)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", pattern, err)
		}

		for _, scope := range loaded {
			key := scope.Name()
			if seen[key] {
				log.Debug("package already loaded", "scope", key, "pattern", pattern)
				continue
			}

			seen[key] = true

			log.Debug("loaded scope", "scope", key, "declarations", len(scope.Declarations))
			scopes = append(scopes, scope)
		}
	}

	return scopes, nil
}

// generated is the outcome of one scope.
type generated struct {
	Plan *plan.Plan
	File *gen.GeneratedFile
}

// generateAll synthesizes and renders every scope concurrently. Results
// keep the order of scopes.
func generateAll(ctx context.Context, scopes []*analyze.Scope, planCfg plan.Config, genCfg gen.GeneratorConfig,
	log logger.Logger,
) ([]generated, error) {
	results := make([]generated, len(scopes))
	generator := gen.NewGenerator(genCfg)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, scope := range scopes {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := plan.Synthesize(scope, planCfg)

			if conflicts := plan.Conflicts(scope, p); len(conflicts) > 0 {
				errs := make([]error, 0, len(conflicts))
				for _, c := range conflicts {
					errs = append(errs, errors.New(c.String()))
				}

				return fmt.Errorf("generated names conflict in %s: %w", scope.Name(), errors.Join(errs...))
			}

			file, err := generator.Generate(p)
			if err != nil {
				return fmt.Errorf("generating %s: %w", scope.Name(), err)
			}

			log.Debug("generated scope", "scope", p.ScopeName,
				"move", p.Count(plan.RoutineMove), "from", p.Count(plan.RoutineFrom))

			results[i] = generated{Plan: p, File: file}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
