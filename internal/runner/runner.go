// Package runner executes one conversion: parse the hypergraph, compute the
// flow tables, run the selected projections in parallel and write each
// network to its own file as soon as it is ready.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/hypergraph"
	"github.com/katalvlaran/hypernet/internal/config"
	"github.com/katalvlaran/hypernet/internal/logging"
	"github.com/katalvlaran/hypernet/internal/metrics"
	"github.com/katalvlaran/hypernet/pajek"
	"github.com/katalvlaran/hypernet/projection"
)

// ErrNoInput indicates a configuration without an input file.
var ErrNoInput = errors.New("runner: no input file")

// Report summarizes a run.
type Report struct {
	RunID   string
	Nodes   int
	Edges   int
	Results []projection.Result
	// Files maps each successfully written kind to its output path.
	Files map[projection.Kind]string
}

// Run performs the conversion described by cfg. Projections that succeed
// are written even when others fail; the returned error joins every failure.
// log and m may be nil.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger, m *metrics.Metrics) (*Report, error) {
	if cfg.Input == "" {
		return nil, ErrNoInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.Kinds()
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logging.NewNop()
	}

	rep := &Report{RunID: uuid.NewString(), Files: make(map[projection.Kind]string)}
	log = log.With("run_id", rep.RunID)
	log.Info("run.start", "input", cfg.Input, "output_dir", cfg.OutputDir,
		"threshold", cfg.Threshold, "workers", cfg.Workers, "projections", len(kinds))

	started := time.Now()
	h, err := hypergraph.ParseFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	m.ObservePhase("parse", time.Since(started).Seconds())
	rep.Nodes, rep.Edges = h.NodeCount(), h.EdgeCount()
	log.Debug("hypergraph.loaded", "nodes", rep.Nodes, "edges", rep.Edges, "incidences", h.IncidenceCount())

	started = time.Now()
	q, err := flow.Compute(h, flow.WithDefaultGamma(cfg.DefaultGamma))
	if err != nil {
		return nil, err
	}
	m.ObservePhase("flow", time.Since(started).Seconds())

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("runner: create %s: %w", cfg.OutputDir, err)
	}

	writes := make([]string, len(projection.AllKinds()))
	write := func(r projection.Result) error {
		path := filepath.Join(cfg.OutputDir, r.Kind.FileName())
		if err := pajek.WriteFile(path, r.Network); err != nil {
			return err
		}
		writes[r.Kind] = path
		return nil
	}

	started = time.Now()
	results, runErr := projection.All(ctx, q, kinds,
		projection.WithThreshold(cfg.Threshold),
		projection.WithWorkers(cfg.Workers),
		projection.WithResultHook(write),
	)
	m.ObservePhase("project", time.Since(started).Seconds())
	rep.Results = results

	for _, r := range results {
		m.Observe(r)
		if r.Err != nil {
			log.Error("projection.failed", "projection", r.Kind.String(), "error", r.Err)
			continue
		}
		rep.Files[r.Kind] = writes[r.Kind]
		s := r.Network.Stats()
		log.Info("projection.done", "projection", r.Kind.String(), "file", writes[r.Kind],
			"links", s.Links, "dropped", s.Dropped, "vertices", s.Vertices, "states", s.States,
			"duration", r.Duration)
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	log.Info("run.done", "written", len(rep.Files), "failed", len(results)-len(rep.Files))
	return rep, runErr
}
