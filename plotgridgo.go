// Package plotgridgo resolves declarative plot batch configurations into
// concrete, validated plot-generation jobs.
//
// A configuration names figures — templates describing one family of plots —
// and the axes those figures vary over: scenarios, weight methods (the
// estimators of an information-transfer analysis pipeline), and
// significance-test cases. This package loads such a configuration, fills in
// top-level defaults, expands each figure's Cartesian product of axes into
// plot jobs, validates them, and returns flat records for an external
// rendering backend. The numerical estimators, the drawing of figures, and
// all file I/O for data and images belong to that backend, not to this
// engine.
//
// The sub-packages can be composed directly for finer control; this package
// only wires the common path together.
package plotgridgo

import (
	"context"

	"github.com/faultmap/plotgridgo/config"
	"github.com/faultmap/plotgridgo/hclconf"
	"github.com/faultmap/plotgridgo/pipeline"
)

// Load reads the configuration files reachable from the given paths into a
// model, using the plot types of opts.Registry (or the built-ins).
func Load(ctx context.Context, opts pipeline.Options, paths ...string) (*config.Model, error) {
	return hclconf.NewLoader(opts.Registry).Load(ctx, paths...)
}

// Run loads a configuration and runs the full pipeline over it.
func Run(ctx context.Context, opts pipeline.Options, paths ...string) (*pipeline.Result, error) {
	model, err := Load(ctx, opts, paths...)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, model, opts)
}
