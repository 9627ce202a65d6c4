package expand

import (
	"fmt"
	"iter"

	"github.com/zclconf/go-cty/cty"

	"github.com/faultmap/plotgridgo/config"
)

// Built-in expansion rules. The grouping behaviour differs per plot type:
// time series and FFT figures draw all plotvars on one set of axes, so the
// variant axis is a single group; values-vs-delays fans out over box indexes
// and source variables; values-vs-boxes fans out over source variables only,
// since the plot aggregates across boxes by definition.

func timeSeriesRule() *Rule {
	return &Rule{
		Decode: func(attrs map[string]cty.Value) (config.PlotParams, error) {
			pv, err := takeStringList(attrs, "plotvars")
			if err != nil {
				return nil, err
			}
			unit, err := takeString(attrs, "time_unit")
			if err != nil {
				return nil, err
			}
			return config.TimeSeriesParams{PlotVars: pv, TimeUnit: unit}, nil
		},
		Variants: func(params config.PlotParams) iter.Seq[config.Variant] {
			p := params.(config.TimeSeriesParams)
			return func(yield func(config.Variant) bool) {
				yield(config.Variant{PlotVars: p.PlotVars, TimeUnit: p.TimeUnit})
			}
		},
	}
}

func fftRule() *Rule {
	return &Rule{
		Decode: func(attrs map[string]cty.Value) (config.PlotParams, error) {
			pv, err := takeStringList(attrs, "plotvars")
			if err != nil {
				return nil, err
			}
			unit, err := takeString(attrs, "frequency_unit")
			if err != nil {
				return nil, err
			}
			return config.FFTParams{PlotVars: pv, FrequencyUnit: unit}, nil
		},
		Variants: func(params config.PlotParams) iter.Seq[config.Variant] {
			p := params.(config.FFTParams)
			return func(yield func(config.Variant) bool) {
				yield(config.Variant{PlotVars: p.PlotVars, FrequencyUnit: p.FrequencyUnit})
			}
		},
	}
}

func delaysRule() *Rule {
	return &Rule{
		Decode: func(attrs map[string]cty.Value) (config.PlotParams, error) {
			boxes, err := takeIntList(attrs, "boxindexes")
			if err != nil {
				return nil, err
			}
			// `boxindex` is accepted as shorthand for a single-element list.
			if v, ok := attrs["boxindex"]; ok {
				delete(attrs, "boxindex")
				n, err := config.IntList(cty.TupleVal([]cty.Value{v}))
				if err != nil {
					return nil, fmt.Errorf("boxindex: %w", err)
				}
				boxes = append(boxes, n...)
			}
			src, err := takeStringList(attrs, "sourcevars")
			if err != nil {
				return nil, err
			}
			dst, err := takeStringList(attrs, "destvars")
			if err != nil {
				return nil, err
			}
			thresh, err := takeBool(attrs, "threshold_plotting")
			if err != nil {
				return nil, err
			}
			return config.DelaysParams{
				BoxIndexes:        boxes,
				SourceVars:        src,
				DestVars:          dst,
				ThresholdPlotting: thresh,
			}, nil
		},
		Check: func(params config.PlotParams) error {
			p := params.(config.DelaysParams)
			if len(p.BoxIndexes) == 0 {
				return &EmptyAxisError{Axis: "boxindexes"}
			}
			if len(p.SourceVars) == 0 {
				return &EmptyAxisError{Axis: "sourcevars"}
			}
			return nil
		},
		Variants: func(params config.PlotParams) iter.Seq[config.Variant] {
			p := params.(config.DelaysParams)
			return func(yield func(config.Variant) bool) {
				for _, box := range p.BoxIndexes {
					for _, src := range p.SourceVars {
						v := config.Variant{
							BoxIndex:          &box,
							SourceVar:         src,
							DestVars:          p.DestVars,
							ThresholdPlotting: p.ThresholdPlotting,
						}
						if !yield(v) {
							return
						}
					}
				}
			}
		},
	}
}

func boxesRule() *Rule {
	return &Rule{
		Decode: func(attrs map[string]cty.Value) (config.PlotParams, error) {
			src, err := takeStringList(attrs, "sourcevars")
			if err != nil {
				return nil, err
			}
			dst, err := takeStringList(attrs, "destvars")
			if err != nil {
				return nil, err
			}
			thresh, err := takeBool(attrs, "threshold_plotting")
			if err != nil {
				return nil, err
			}
			return config.BoxesParams{
				SourceVars:        src,
				DestVars:          dst,
				ThresholdPlotting: thresh,
			}, nil
		},
		Check: func(params config.PlotParams) error {
			p := params.(config.BoxesParams)
			if len(p.SourceVars) == 0 {
				return &EmptyAxisError{Axis: "sourcevars"}
			}
			return nil
		},
		Variants: func(params config.PlotParams) iter.Seq[config.Variant] {
			p := params.(config.BoxesParams)
			return func(yield func(config.Variant) bool) {
				for _, src := range p.SourceVars {
					v := config.Variant{
						SourceVar:         src,
						DestVars:          p.DestVars,
						ThresholdPlotting: p.ThresholdPlotting,
					}
					if !yield(v) {
						return
					}
				}
			}
		},
	}
}

// --- attribute helpers shared by the built-in rules ---

func takeStringList(attrs map[string]cty.Value, name string) ([]string, error) {
	v, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	delete(attrs, name)
	l, err := config.StringList(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

func takeIntList(attrs map[string]cty.Value, name string) ([]int, error) {
	v, ok := attrs[name]
	if !ok {
		return nil, nil
	}
	delete(attrs, name)
	l, err := config.IntList(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

func takeString(attrs map[string]cty.Value, name string) (string, error) {
	v, ok := attrs[name]
	if !ok {
		return "", nil
	}
	delete(attrs, name)
	s, err := config.String(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}

func takeBool(attrs map[string]cty.Value, name string) (bool, error) {
	v, ok := attrs[name]
	if !ok {
		return false, nil
	}
	delete(attrs, name)
	b, err := config.Bool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
