package expand

import (
	"fmt"
	"iter"
	"sort"

	"github.com/zclconf/go-cty/cty"

	"github.com/faultmap/plotgridgo/config"
)

// Rule describes how one plot type participates in loading and expansion.
type Rule struct {
	// Decode interprets the plot-type-specific attributes of a figure body.
	// It must delete every attribute it consumes from attrs; whatever is left
	// over is treated as unvalidated pass-through.
	Decode func(attrs map[string]cty.Value) (config.PlotParams, error)

	// Check reports empty-axis mistakes in the decoded params before any job
	// is produced. It may be nil for plot types whose variant axis always
	// yields exactly one variant.
	Check func(params config.PlotParams) error

	// Variants enumerates the innermost expansion axis, in deterministic
	// order.
	Variants func(params config.PlotParams) iter.Seq[config.Variant]
}

// Registry maps plot types to their expansion rules.
type Registry struct {
	rules map[config.PlotType]*Rule
}

// NewRegistry creates an empty Registry instance.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[config.PlotType]*Rule)}
}

// Register adds a rule for a plot type. Registering the same plot type twice
// is a programming error.
func (r *Registry) Register(t config.PlotType, rule *Rule) {
	if _, exists := r.rules[t]; exists {
		panic(fmt.Sprintf("expansion rule for plot type '%s' already registered", t))
	}
	r.rules[t] = rule
}

// Rule returns the rule registered for a plot type.
func (r *Registry) Rule(t config.PlotType) (*Rule, bool) {
	rule, ok := r.rules[t]
	return rule, ok
}

// Types returns the registered plot types in sorted order, for error
// messages.
func (r *Registry) Types() []config.PlotType {
	out := make([]config.PlotType, 0, len(r.rules))
	for t := range r.rules {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Default returns a fresh registry carrying the built-in plot types.
func Default() *Registry {
	r := NewRegistry()
	r.Register(config.PlotTimeSeries, timeSeriesRule())
	r.Register(config.PlotFFT, fftRule())
	r.Register(config.PlotValuesVsDelays, delaysRule())
	r.Register(config.PlotValuesVsBoxes, boxesRule())
	return r
}
