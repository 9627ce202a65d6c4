package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultmap/plotgridgo/config"
	"github.com/faultmap/plotgridgo/emit"
	"github.com/faultmap/plotgridgo/expand"
	"github.com/faultmap/plotgridgo/resolve"
	"github.com/faultmap/plotgridgo/validate"
)

func testModel() *config.Model {
	return &config.Model{
		Defaults: config.Defaults{
			Graphs:        []string{"closedloop"},
			WeightMethods: []string{"transfer_entropy_kernel", "cross_correlation"},
			SigtestCases:  []string{"sigtested", "nosigtest"},
		},
		Figures: []*config.FigureSpec{
			{
				Name:     "ts",
				PlotType: config.PlotTimeSeries,
				Params:   config.TimeSeriesParams{PlotVars: []string{"X 1"}},
			},
			{
				Name:     "fft",
				PlotType: config.PlotFFT,
				Params:   config.FFTParams{PlotVars: []string{"X 1", "X 2"}},
			},
		},
	}
}

func TestRunExpandsAllFigures(t *testing.T) {
	result, err := Run(context.Background(), testModel(), Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Failures)
	// Two figures, each 1 scenario x 2 methods x 2 cases.
	require.Len(t, result.Jobs, 8)
	assert.Equal(t, "ts", result.Jobs[0].Figure, "jobs keep figure declaration order")
	assert.Equal(t, "fft", result.Jobs[4].Figure)
}

func TestRunIsolatesFigureFailures(t *testing.T) {
	model := testModel()
	model.Figures = append(model.Figures,
		&config.FigureSpec{
			Name:          "bad_method",
			PlotType:      config.PlotFFT,
			WeightMethods: []string{"tea_leaves"},
			Params:        config.FFTParams{PlotVars: []string{"X 1"}},
		},
		&config.FigureSpec{
			Name:         "empty_cases",
			PlotType:     config.PlotFFT,
			SigtestCases: []string{},
			Params:       config.FFTParams{PlotVars: []string{"X 1"}},
		},
		&config.FigureSpec{
			Name:     "orphan",
			PlotType: config.PlotFFT,
			Params:   config.FFTParams{PlotVars: []string{"X 1"}},
		},
	)
	// Drop the scenario default so that "orphan" has nothing to inherit;
	// every other figure names its scenario explicitly.
	model.Defaults.Graphs = nil
	for _, fig := range model.Figures[:4] {
		fig.Scenarios = []string{"closedloop"}
	}

	result, err := Run(context.Background(), model, Options{})
	require.NoError(t, err)

	require.Len(t, result.Failures, 3)
	assert.Equal(t, "bad_method", result.Failures[0].Figure)
	assert.Equal(t, "empty_cases", result.Failures[1].Figure)
	assert.Equal(t, "orphan", result.Failures[2].Figure)

	var jobErr *validate.JobError
	assert.ErrorAs(t, result.Failures[0].Err, &jobErr)
	var emptyErr *expand.EmptyAxisError
	assert.ErrorAs(t, result.Failures[1].Err, &emptyErr)
	var missingErr *resolve.MissingDefaultError
	assert.ErrorAs(t, result.Failures[2].Err, &missingErr)

	require.Len(t, result.Jobs, 8, "healthy figures still produce their jobs")
}

func TestRunAggregatesValidationErrors(t *testing.T) {
	model := &config.Model{
		Defaults: config.Defaults{
			Graphs:        []string{"s"},
			WeightMethods: []string{"tea_leaves"},
			SigtestCases:  []string{"maybe"},
		},
		Figures: []*config.FigureSpec{{
			Name:     "broken",
			PlotType: config.PlotFFT,
			Params:   config.FFTParams{PlotVars: []string{"X 1"}},
		}},
	}

	result, err := Run(context.Background(), model, Options{})
	require.NoError(t, err)
	require.Len(t, result.Failures, 1)

	var jobErr *validate.JobError
	require.ErrorAs(t, result.Failures[0].Err, &jobErr)
	assert.Len(t, jobErr.Fields, 2, "one pass reports every violation on the job")
}

func TestRunDeterministicAcrossWorkerCounts(t *testing.T) {
	model := testModel()

	sequential, err := Run(context.Background(), model, Options{Workers: 1})
	require.NoError(t, err)
	concurrent, err := Run(context.Background(), model, Options{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, sequential.Jobs, concurrent.Jobs)
}

func TestRunIdempotent(t *testing.T) {
	model := testModel()

	first, err := Run(context.Background(), model, Options{})
	require.NoError(t, err)
	second, err := Run(context.Background(), model, Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Jobs, second.Jobs)
	assert.Equal(t, first.Failures, second.Failures)
}

// cancellingRenderer cancels its context after rendering one job.
type cancellingRenderer struct {
	cancel   context.CancelFunc
	rendered []emit.Record
}

func (r *cancellingRenderer) Render(_ context.Context, rec emit.Record) error {
	r.rendered = append(r.rendered, rec)
	r.cancel()
	return nil
}

func TestRunCancellationAtJobGranularity(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	renderer := &cancellingRenderer{cancel: cancel}

	result, err := Run(ctx, testModel(), Options{Renderer: renderer})
	require.ErrorIs(t, err, context.Canceled)

	require.Len(t, renderer.rendered, 1, "remaining jobs are abandoned")
	assert.Equal(t, result.Jobs[0], renderer.rendered[0], "the already-rendered job stays valid")
}
