package expand

import (
	"errors"
	"iter"

	"github.com/faultmap/plotgridgo/config"
)

// Jobs returns the lazily generated sequence of plot jobs for a resolved
// figure spec. The sequence is restartable and deterministic: scenarios form
// the outer loop, weight methods the middle, sigtest cases the inner, and the
// plot type's variant axis the innermost.
//
// The sequence yields exactly one non-nil error, as its final element, when
// the spec cannot be expanded: an UnsupportedPlotTypeError when no rule is
// registered for its plot type, or an EmptyAxisError when any axis resolved
// to an empty set. No jobs precede such an error.
func (r *Registry) Jobs(spec *config.FigureSpec) iter.Seq2[config.PlotJob, error] {
	return func(yield func(config.PlotJob, error) bool) {
		rule, ok := r.rules[spec.PlotType]
		if !ok {
			yield(config.PlotJob{}, &UnsupportedPlotTypeError{Figure: spec.Name, PlotType: spec.PlotType})
			return
		}

		axes := []struct {
			name   string
			values []string
		}{
			{"scenarios", spec.Scenarios},
			{"weight_methods", spec.WeightMethods},
			{"sigtest_cases", spec.SigtestCases},
		}
		for _, axis := range axes {
			if len(axis.values) == 0 {
				yield(config.PlotJob{}, &EmptyAxisError{Figure: spec.Name, Axis: axis.name})
				return
			}
		}

		if rule.Check != nil {
			if err := rule.Check(spec.Params); err != nil {
				var empty *EmptyAxisError
				if errors.As(err, &empty) && empty.Figure == "" {
					empty.Figure = spec.Name
				}
				yield(config.PlotJob{}, err)
				return
			}
		}

		index := 0
		for _, scenario := range spec.Scenarios {
			for _, method := range spec.WeightMethods {
				for _, sigtest := range spec.SigtestCases {
					for variant := range rule.Variants(spec.Params) {
						job := config.PlotJob{
							Figure:       spec.Name,
							Index:        index,
							PlotType:     spec.PlotType,
							Scenario:     scenario,
							WeightMethod: method,
							SigtestCase:  sigtest,
							Settings:     spec.Settings,
							StartTime:    spec.StartTime,
							LegendBBox:   spec.LegendBBox,
							AxisLimits:   spec.AxisLimits,
							LineLabels:   spec.LineLabels,
							Variant:      variant,
							Extra:        spec.Extra,
						}
						index++
						if !yield(job, nil) {
							return
						}
					}
				}
			}
		}
	}
}
