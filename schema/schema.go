// Package schema defines the HCL block structure of a plot batch
// configuration file. It is the serialization-facing counterpart of the
// format-agnostic model in the config package.
package schema

import "github.com/hashicorp/hcl/v2"

// Defaults represents one top-level `defaults` block. The block is
// repeatable; later blocks override earlier ones key by key, which gives the
// duplicate-key tolerance the raw format requires a defined meaning.
//
// Absent attributes decode to nil slices, explicit empty lists to empty
// non-nil slices. The merge step relies on that distinction.
type Defaults struct {
	Graphs        []string `hcl:"graphs,optional"`
	WeightMethods []string `hcl:"weight_methods,optional"`
	SigtestCases  []string `hcl:"sigtest_cases,optional"`
}

// Figure represents a `figure` block. The first label is the plot type and
// the second the figure name, so the plot type selects which attribute set
// the body may legally carry. Everything inside the body is left undecoded
// here: common attributes, plot-type-specific attributes, and unknown
// pass-through attributes are all separated during translation.
type Figure struct {
	PlotType string   `hcl:"plot_type,label"`
	Name     string   `hcl:"figure_name,label"`
	Body     hcl.Body `hcl:",remain"`
}

// Document represents the top-level structure of one configuration file.
type Document struct {
	Defaults []*Defaults `hcl:"defaults,block"`
	Figures  []*Figure   `hcl:"figure,block"`
}
