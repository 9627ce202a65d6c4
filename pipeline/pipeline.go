package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/faultmap/plotgridgo/config"
	"github.com/faultmap/plotgridgo/ctxlog"
	"github.com/faultmap/plotgridgo/emit"
	"github.com/faultmap/plotgridgo/expand"
	"github.com/faultmap/plotgridgo/resolve"
	"github.com/faultmap/plotgridgo/validate"
)

// Renderer receives emitted jobs one at a time. Implementations draw and
// persist the figure for each record; this engine never performs that work
// itself.
type Renderer interface {
	Render(ctx context.Context, rec emit.Record) error
}

// Options configure a pipeline run. The zero value selects one worker, the
// built-in plot types and estimators, and no renderer.
type Options struct {
	// Workers is the number of figures processed concurrently.
	Workers int
	// Registry supplies the expansion rules.
	Registry *expand.Registry
	// Estimators supplies the known weight-method identifiers.
	Estimators *validate.Estimators
	// Renderer, when non-nil, receives every emitted job in output order.
	Renderer Renderer
}

// FigureFailure records why one figure produced no jobs.
type FigureFailure struct {
	Figure string
	Err    error
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Jobs holds the emitted records in figure declaration order, each
	// figure's jobs in guaranteed expansion order.
	Jobs []emit.Record
	// Failures holds the figures that produced no jobs, in declaration
	// order.
	Failures []FigureFailure
}

// Run resolves, expands, validates, and emits every figure of the model.
// It returns a non-nil Result even when figures failed; the returned error
// is non-nil only when the run itself was cut short (context cancellation or
// a renderer error).
func Run(ctx context.Context, model *config.Model, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	registry := opts.Registry
	if registry == nil {
		registry = expand.Default()
	}
	estimators := opts.Estimators
	if estimators == nil {
		estimators = validate.DefaultEstimators()
	}

	type figureResult struct {
		jobs []emit.Record
		err  error
	}
	results := make([]figureResult, len(model.Figures))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for workerID := 0; workerID < workers; workerID++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				spec := model.Figures[i]
				logger.Debug("Worker picked up figure.", "workerID", workerID, "figure", spec.Name)
				jobs, err := processFigure(ctx, model.Defaults, spec, registry, estimators)
				results[i] = figureResult{jobs: jobs, err: err}
			}
		}()
	}
	for i := range model.Figures {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	result := &Result{}
	for i, fr := range results {
		if fr.err != nil && !errors.Is(fr.err, context.Canceled) && !errors.Is(fr.err, context.DeadlineExceeded) {
			logger.Error("Figure failed.", "figure", model.Figures[i].Name, "error", fr.err)
			result.Failures = append(result.Failures, FigureFailure{Figure: model.Figures[i].Name, Err: fr.err})
			continue
		}
		result.Jobs = append(result.Jobs, fr.jobs...)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	logger.Info("Pipeline run complete.", "jobs", len(result.Jobs), "failed_figures", len(result.Failures))

	if opts.Renderer != nil {
		for _, rec := range result.Jobs {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			if err := opts.Renderer.Render(ctx, rec); err != nil {
				return result, fmt.Errorf("rendering figure %q job %d: %w", rec.Figure, rec.Index, err)
			}
		}
	}
	return result, nil
}

// processFigure runs one figure through resolve → expand → validate → emit.
// Validation errors are collected across the figure's whole job sequence and
// joined, so the caller reports every violation at once.
func processFigure(
	ctx context.Context,
	defaults config.Defaults,
	spec *config.FigureSpec,
	registry *expand.Registry,
	estimators *validate.Estimators,
) ([]emit.Record, error) {
	resolved, err := resolve.Figure(defaults, spec)
	if err != nil {
		return nil, err
	}

	var jobs []emit.Record
	var violations []error
	for job, err := range registry.Jobs(resolved) {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if verr := validate.Job(estimators, &job); verr != nil {
			violations = append(violations, verr)
			continue
		}
		jobs = append(jobs, emit.FromJob(&job))
	}
	if len(violations) > 0 {
		return nil, errors.Join(violations...)
	}
	return jobs, nil
}
