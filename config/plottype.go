package config

// PlotType identifies the family of figure a spec describes.
type PlotType string

const (
	PlotTimeSeries     PlotType = "fig_timeseries"
	PlotFFT            PlotType = "fig_fft"
	PlotValuesVsDelays PlotType = "fig_values_vs_delays"
	PlotValuesVsBoxes  PlotType = "fig_values_vs_boxes"
)

// PlotParams carries the plot-type-specific fields of a figure spec. Each
// plot type has its own variant struct, so a figure can only hold fields that
// apply to its type.
type PlotParams interface {
	PlotKind() PlotType
}

// TimeSeriesParams are the fields specific to fig_timeseries figures. All
// plotvars are rendered together on one set of axes per job.
type TimeSeriesParams struct {
	PlotVars []string
	TimeUnit string
}

func (TimeSeriesParams) PlotKind() PlotType { return PlotTimeSeries }

// FFTParams are the fields specific to fig_fft figures.
type FFTParams struct {
	PlotVars      []string
	FrequencyUnit string
}

func (FFTParams) PlotKind() PlotType { return PlotFFT }

// DelaysParams are the fields specific to fig_values_vs_delays figures. The
// expansion fans out over BoxIndexes and SourceVars; DestVars stay grouped on
// one job.
type DelaysParams struct {
	BoxIndexes        []int
	SourceVars        []string
	DestVars          []string
	ThresholdPlotting bool
}

func (DelaysParams) PlotKind() PlotType { return PlotValuesVsDelays }

// BoxesParams are the fields specific to fig_values_vs_boxes figures. The
// plot type aggregates across boxes by definition, so there is no box axis.
type BoxesParams struct {
	SourceVars        []string
	DestVars          []string
	ThresholdPlotting bool
}

func (BoxesParams) PlotKind() PlotType { return PlotValuesVsBoxes }
