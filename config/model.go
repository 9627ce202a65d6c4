package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of one plot batch
// configuration: the merged top-level defaults plus all figure specs in
// declaration order.
type Model struct {
	Defaults Defaults
	Figures  []*FigureSpec
}

// Defaults holds the top-level fallback lists a figure inherits when it does
// not set the corresponding field itself. The global scenario list keeps the
// name `graphs` it carries in the source format. A nil slice means the
// default was never declared; an empty non-nil slice is an explicit (and
// almost certainly mistaken) empty declaration, preserved so that expansion
// can report it rather than silently produce zero jobs.
type Defaults struct {
	Graphs        []string
	WeightMethods []string
	SigtestCases  []string
}

// FigureSpec is one named plot job template. List-valued axis fields follow
// the same nil/empty convention as Defaults: nil means "inherit the top-level
// default", empty means "explicitly empty".
type FigureSpec struct {
	Name     string
	PlotType PlotType

	Scenarios     []string
	WeightMethods []string
	SigtestCases  []string

	// Settings names an external settings profile. It is resolved by the
	// rendering collaborator, not by this engine.
	Settings string

	StartTime  *float64
	LegendBBox []float64
	// AxisLimits is either false (disabled), a (xmin,xmax,ymin,ymax) tuple,
	// or cty.NilVal when absent. Its shape is checked by the validator.
	AxisLimits cty.Value
	LineLabels []string

	// Params carries the plot-type-specific fields.
	Params PlotParams

	// Extra holds attributes this engine does not interpret. They are passed
	// through to emitted records unvalidated, so newer front-ends can carry
	// fields an older engine has never heard of.
	Extra map[string]cty.Value

	// DeclRange locates the figure block in its source file, for error
	// messages.
	DeclRange hcl.Range
}
