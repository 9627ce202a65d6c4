package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/faultmap/plotgridgo/config"
)

func validJob() config.PlotJob {
	return config.PlotJob{
		Figure:       "f",
		PlotType:     config.PlotFFT,
		Scenario:     "s",
		WeightMethod: "transfer_entropy_kernel",
		SigtestCase:  "sigtested",
		LegendBBox:   []float64{0.85, 0.9},
		Variant:      config.Variant{PlotVars: []string{"X 1"}},
	}
}

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	paths := make([]string, len(jobErr.Fields))
	for i, f := range jobErr.Fields {
		paths[i] = f.Path
	}
	return paths
}

func TestJobValid(t *testing.T) {
	job := validJob()
	assert.NoError(t, Job(DefaultEstimators(), &job))
}

func TestJobChecks(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.PlotJob)
		path   string
	}{
		{
			name:   "unknown weight method",
			mutate: func(j *config.PlotJob) { j.WeightMethod = "tea_leaves" },
			path:   "weight_method",
		},
		{
			name:   "unknown sigtest case",
			mutate: func(j *config.PlotJob) { j.SigtestCase = "maybe" },
			path:   "sigtest_case",
		},
		{
			name:   "legendbbox wrong arity",
			mutate: func(j *config.PlotJob) { j.LegendBBox = []float64{0.1, 0.2, 0.3} },
			path:   "legendbbox",
		},
		{
			name: "negative boxindex",
			mutate: func(j *config.PlotJob) {
				box := -1
				j.BoxIndex = &box
			},
			path: "boxindex",
		},
		{
			name:   "axis_limits true",
			mutate: func(j *config.PlotJob) { j.AxisLimits = cty.True },
			path:   "axis_limits",
		},
		{
			name: "axis_limits wrong arity",
			mutate: func(j *config.PlotJob) {
				j.AxisLimits = cty.TupleVal([]cty.Value{cty.NumberIntVal(0), cty.NumberIntVal(1)})
			},
			path: "axis_limits",
		},
		{
			name: "axis_limits inverted bounds",
			mutate: func(j *config.PlotJob) {
				j.AxisLimits = cty.TupleVal([]cty.Value{
					cty.NumberIntVal(5), cty.NumberIntVal(1),
					cty.NumberIntVal(0), cty.NumberIntVal(1),
				})
			},
			path: "axis_limits",
		},
		{
			name:   "empty plotvars",
			mutate: func(j *config.PlotJob) { j.PlotVars = nil },
			path:   "plotvars",
		},
		{
			name:   "blank plotvar entry",
			mutate: func(j *config.PlotJob) { j.PlotVars = []string{"X 1", ""} },
			path:   "plotvars[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := validJob()
			tt.mutate(&job)
			err := Job(DefaultEstimators(), &job)
			assert.Contains(t, fieldPaths(t, err), tt.path)
		})
	}
}

func TestJobCollectsAllViolations(t *testing.T) {
	job := validJob()
	job.WeightMethod = "tea_leaves"
	job.SigtestCase = "maybe"
	job.PlotVars = nil
	job.Index = 7

	err := Job(DefaultEstimators(), &job)
	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "f", jobErr.Figure)
	assert.Equal(t, 7, jobErr.Index)
	assert.Len(t, jobErr.Fields, 3, "all violations reported together, not just the first")
}

func TestDelaysJobChecksSourceAndDestVars(t *testing.T) {
	box := 0
	job := config.PlotJob{
		Figure:       "d",
		PlotType:     config.PlotValuesVsDelays,
		Scenario:     "s",
		WeightMethod: "cross_correlation",
		SigtestCase:  "nosigtest",
		Variant:      config.Variant{BoxIndex: &box, SourceVar: "", DestVars: nil},
	}
	err := Job(DefaultEstimators(), &job)
	paths := fieldPaths(t, err)
	assert.Contains(t, paths, "sourcevars")
	assert.Contains(t, paths, "destvars")
}

func TestEstimatorRegistryIsExtensible(t *testing.T) {
	estimators := DefaultEstimators()
	estimators.Register("partial_correlation")

	job := validJob()
	job.WeightMethod = "partial_correlation"
	assert.NoError(t, Job(estimators, &job))

	assert.Panics(t, func() { estimators.Register("partial_correlation") })
}
