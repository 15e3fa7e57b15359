// SPDX-License-Identifier: MIT
//
// api.go: kind dispatch and parallel execution.
//
// Policy:
//   - Projections share only the read-only *flow.Quantities; every goroutine
//     owns the network it builds, so no locking is involved.
//   - A failing projection does not cancel its siblings: independent results
//     are still delivered (and handed to OnResult) and all failures are
//     joined into the returned error.
//   - Context cancellation is checked before a projection starts; a running
//     projection is bounded work and is not interrupted.

package projection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/network"
)

// Func is the common signature of every projection.
type Func func(q *flow.Quantities, opts ...Option) (*network.Network, error)

var funcs = [...]Func{
	KindBipartite:           Bipartite,
	KindNonBacktracking:     NonBacktracking,
	KindUnipartiteSelfLinks: UnipartiteSelfLinks,
	KindUnipartite:          Unipartite,
	KindMultilayerSelfLinks: MultilayerSelfLinks,
	KindMultilayerStates:    multilayerStates,
}

// Result is the outcome of one projection run by All.
type Result struct {
	Kind     Kind
	Network  *network.Network
	Duration time.Duration
	Err      error
}

// Project runs the projection selected by kind.
func Project(kind Kind, q *flow.Quantities, opts ...Option) (*network.Network, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("Project: %s: %w", kind, ErrUnknownKind)
	}
	return funcs[kind](q, opts...)
}

// All runs the given kinds (every kind when none is given) in parallel and
// returns one Result per kind in request order. Repeated kinds run once, at
// their first position. The error joins every per-kind failure, including
// OnResult errors.
func All(ctx context.Context, q *flow.Quantities, kinds []Kind, opts ...Option) ([]Result, error) {
	o, err := prepare(q, opts)
	if err != nil {
		return nil, fmt.Errorf("All: %w", err)
	}
	if len(kinds) == 0 {
		kinds = AllKinds()
	}
	unique := make([]Kind, 0, len(kinds))
	seen := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("All: %s: %w", k, ErrUnknownKind)
		}
		if !seen[k] {
			seen[k] = true
			unique = append(unique, k)
		}
	}
	kinds = unique

	results := make([]Result, len(kinds))
	var g errgroup.Group
	if o.Workers > 0 {
		g.SetLimit(o.Workers)
	}

	for idx, kind := range kinds {
		g.Go(func() error {
			res := Result{Kind: kind}
			if err := ctx.Err(); err != nil {
				res.Err = fmt.Errorf("%s: %w", kind, err)
				results[idx] = res
				return nil
			}

			started := time.Now()
			res.Network, res.Err = Project(kind, q, opts...)
			res.Duration = time.Since(started)

			if res.Err == nil && o.OnResult != nil {
				if err := o.OnResult(res); err != nil {
					res.Err = fmt.Errorf("%s: %w", kind, err)
				}
			}
			results[idx] = res
			return nil // siblings keep running; errors are joined below
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}
