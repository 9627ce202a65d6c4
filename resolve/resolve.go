// Package resolve applies the default precedence rules to figure specs:
// an explicit figure-level value wins, otherwise the top-level default
// applies, otherwise resolution fails. Resolution is a pure function from
// (defaults, spec) to an effective spec; the input model is never mutated
// and no state is shared between figures.
package resolve

import (
	"fmt"

	"github.com/faultmap/plotgridgo/config"
)

// MissingDefaultError reports a figure field that was neither set on the
// figure nor covered by a top-level default.
type MissingDefaultError struct {
	Figure string
	Field  string
}

func (e *MissingDefaultError) Error() string {
	return fmt.Sprintf("figure %q: field %q has no value and no top-level default", e.Figure, e.Field)
}

// Figure returns a copy of spec with every inheritable field populated. The
// top-level scenario default keeps its source-format name `graphs`; it fills
// a figure's `scenarios`. A nil figure field inherits; an explicitly empty
// one does not (the mistake is surfaced later as an empty expansion axis).
func Figure(defaults config.Defaults, spec *config.FigureSpec) (*config.FigureSpec, error) {
	out := *spec

	var err error
	if out.Scenarios, err = inherit(spec.Name, "scenarios", spec.Scenarios, defaults.Graphs); err != nil {
		return nil, err
	}
	if out.WeightMethods, err = inherit(spec.Name, "weight_methods", spec.WeightMethods, defaults.WeightMethods); err != nil {
		return nil, err
	}
	if out.SigtestCases, err = inherit(spec.Name, "sigtest_cases", spec.SigtestCases, defaults.SigtestCases); err != nil {
		return nil, err
	}
	return &out, nil
}

func inherit(figure, field string, explicit, fallback []string) ([]string, error) {
	if explicit != nil {
		return explicit, nil
	}
	if fallback != nil {
		return fallback, nil
	}
	return nil, &MissingDefaultError{Figure: figure, Field: field}
}
