// Package emit serializes validated plot jobs into flat, plot-type-tagged
// records for a rendering backend. It performs no validation of its own;
// upstream stages have already checked every field it copies.
package emit

import (
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/faultmap/plotgridgo/config"
)

// Record is the normalized, plot-type-agnostic form of one plot job. Fields
// that do not apply to a record's plot type are simply absent, which keeps
// the rendering backend free of any per-type decoding.
type Record struct {
	Figure   string `json:"figure"`
	Index    int    `json:"index"`
	PlotType string `json:"plot_type"`

	Scenario     string `json:"scenario"`
	WeightMethod string `json:"weight_method"`
	SigtestCase  string `json:"sigtest_case"`

	Settings   string    `json:"settings,omitempty"`
	StartTime  *float64  `json:"starttime,omitempty"`
	LegendBBox []float64 `json:"legendbbox,omitempty"`
	AxisLimits []float64 `json:"axis_limits,omitempty"`
	LineLabels []string  `json:"linelabels,omitempty"`

	PlotVars          []string `json:"plotvars,omitempty"`
	BoxIndex          *int     `json:"boxindex,omitempty"`
	SourceVar         string   `json:"sourcevar,omitempty"`
	DestVars          []string `json:"destvars,omitempty"`
	TimeUnit          string   `json:"time_unit,omitempty"`
	FrequencyUnit     string   `json:"frequency_unit,omitempty"`
	ThresholdPlotting bool     `json:"threshold_plotting,omitempty"`

	Extra map[string]ctyjson.SimpleJSONValue `json:"extra,omitempty"`
}

// FromJob flattens one plot job into a Record.
func FromJob(job *config.PlotJob) Record {
	rec := Record{
		Figure:            job.Figure,
		Index:             job.Index,
		PlotType:          string(job.PlotType),
		Scenario:          job.Scenario,
		WeightMethod:      job.WeightMethod,
		SigtestCase:       job.SigtestCase,
		Settings:          job.Settings,
		StartTime:         job.StartTime,
		LegendBBox:        job.LegendBBox,
		LineLabels:        job.LineLabels,
		PlotVars:          job.PlotVars,
		BoxIndex:          job.BoxIndex,
		SourceVar:         job.SourceVar,
		DestVars:          job.DestVars,
		TimeUnit:          job.TimeUnit,
		FrequencyUnit:     job.FrequencyUnit,
		ThresholdPlotting: job.ThresholdPlotting,
	}
	if bounds, ok := config.AxisBounds(job.AxisLimits); ok {
		rec.AxisLimits = bounds
	}
	if len(job.Extra) > 0 {
		rec.Extra = make(map[string]ctyjson.SimpleJSONValue, len(job.Extra))
		for name, v := range job.Extra {
			rec.Extra[name] = ctyjson.SimpleJSONValue{Value: v}
		}
	}
	return rec
}

// Records flattens a job sequence 1:1, preserving order.
func Records(jobs []config.PlotJob) []Record {
	out := make([]Record, len(jobs))
	for i := range jobs {
		out[i] = FromJob(&jobs[i])
	}
	return out
}
