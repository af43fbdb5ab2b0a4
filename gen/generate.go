package gen

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/schemly/schemly/schema"
)

// WriteStatus classifies the outcome of one artifact write attempt.
type WriteStatus int

// Write outcomes.
const (
	// Written means the artifact was generated and written to disk.
	Written WriteStatus = iota
	// Skipped means the destination already existed and overwrite was
	// not forced.
	Skipped
	// Failed means generation or the write itself errored.
	Failed
)

// WriteResult is the outcome of one artifact: what it was, where it was
// headed, and how the attempt ended.
type WriteResult struct {
	Artifact string
	Path     string
	Status   WriteStatus
	Err      error
}

// Stats summarizes a generation run.
type Stats struct {
	Written int
	Skipped int
	Failed  int
	Results []WriteResult
}

// Total returns the number of artifacts processed.
func (s *Stats) Total() int {
	return s.Written + s.Skipped + s.Failed
}

// Runner drives a full generation pass: pivot-table migrations first,
// then per-model artifacts for every enabled kind, with models fanned
// out across workers. A model that fails validation is skipped and
// recorded; generation continues for its siblings.
type Runner struct {
	cfg     *Config
	workers int

	mu    sync.Mutex
	stats Stats
}

// NewRunner creates a Runner for the given config.
func NewRunner(cfg *Config) *Runner {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{cfg: cfg, workers: workers}
}

// Run executes the generation pass and returns its stats. The returned
// error covers run-level problems only (bad config, cancellation);
// per-artifact failures are recorded in the stats.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	if r.cfg.OutputDir == "" {
		return nil, NewConfigError("output directory cannot be empty")
	}
	if r.cfg.Generate.None() {
		return nil, NewConfigError("at least one artifact kind must be enabled")
	}

	// Pivot migrations first so junction tables sort ahead of the
	// models that reference them.
	if r.cfg.Generate.PivotTables {
		var pivot PivotGenerator
		for _, m := range r.cfg.Models {
			for i := range m.PivotTables {
				p := &m.PivotTables[i]
				content, err := pivot.GeneratePivot(p, r.cfg)
				path := pivot.PivotFilePath(p, r.cfg)
				r.record(r.attempt("pivot table "+p.Name, path, content, err))
			}
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)
	for _, m := range r.cfg.Models {
		m := m
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				r.generateModel(m)
				return nil
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	stats := r.stats
	return &stats, nil
}

// generateModel produces every enabled artifact for one model.
func (r *Runner) generateModel(m *schema.ModelDefinition) {
	if err := schema.ValidateModel(m); err != nil {
		r.record(WriteResult{Artifact: "model " + m.Name, Status: Failed, Err: err})
		return
	}

	tasks := []struct {
		label   string
		gen     Generator
		enabled bool
	}{
		{"model " + m.Name, ModelGenerator{}, r.cfg.Generate.Models},
		{"migration " + m.Table, MigrationGenerator{}, r.cfg.Generate.Migrations},
		{"controller " + m.Name + "Controller", ControllerGenerator{}, r.cfg.Generate.Controllers},
		{"resource " + m.Name + "Resource", ResourceGenerator{}, r.cfg.Generate.Resources},
		{"factory " + m.Name + "Factory", FactoryGenerator{}, r.cfg.Generate.Factories},
		{"DTO " + m.Name + "DTO", DTOGenerator{}, r.cfg.Generate.DTOs},
	}
	for _, t := range tasks {
		if !t.enabled {
			continue
		}
		content, err := t.gen.Generate(m, r.cfg)
		path := t.gen.FilePath(m, r.cfg)
		r.record(r.attempt(t.label, path, content, err))
	}
}

// attempt maps a generation outcome onto a WriteResult, writing the
// artifact when generation succeeded.
func (r *Runner) attempt(label, path, content string, err error) WriteResult {
	if err != nil {
		return WriteResult{Artifact: label, Path: path, Status: Failed, Err: err}
	}
	return safeWrite(label, path, content, r.cfg.ForceOverwrite)
}

// safeWrite performs the idempotent write: with force it always writes;
// otherwise an existing destination is left alone and reported Skipped.
func safeWrite(label, path, content string, force bool) WriteResult {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return WriteResult{Artifact: label, Path: path, Status: Skipped}
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return WriteResult{Artifact: label, Path: path, Status: Failed, Err: err}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return WriteResult{Artifact: label, Path: path, Status: Failed, Err: err}
	}
	return WriteResult{Artifact: label, Path: path, Status: Written}
}

func (r *Runner) record(res WriteResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch res.Status {
	case Written:
		r.stats.Written++
	case Skipped:
		r.stats.Skipped++
	case Failed:
		r.stats.Failed++
	}
	r.stats.Results = append(r.stats.Results, res)
}
