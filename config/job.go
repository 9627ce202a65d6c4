package config

import "github.com/zclconf/go-cty/cty"

// Variant is the innermost expansion axis of one plot type: the payload that
// differs between jobs sharing the same (scenario, weight method, sigtest
// case) combination.
type Variant struct {
	PlotVars          []string
	BoxIndex          *int
	SourceVar         string
	DestVars          []string
	TimeUnit          string
	FrequencyUnit     string
	ThresholdPlotting bool
}

// PlotJob is one fully resolved, concrete unit of plot-generation work:
// one scenario, one weight method, one sigtest case, one variant, plus all
// figure-level parameters. Jobs are value objects; they are produced by
// expansion and never mutated afterwards.
type PlotJob struct {
	Figure string
	// Index is the job's position within its figure's expansion, counted
	// from zero in the guaranteed expansion order.
	Index    int
	PlotType PlotType

	Scenario     string
	WeightMethod string
	SigtestCase  string

	Settings   string
	StartTime  *float64
	LegendBBox []float64
	AxisLimits cty.Value
	LineLabels []string

	Variant

	Extra map[string]cty.Value
}
