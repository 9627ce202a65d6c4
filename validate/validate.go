// Package validate checks fully expanded plot jobs against the field-level
// contracts of their plot types. Validation is pure: it inspects one job at a
// time and collects every violation it finds instead of failing on the first,
// so a user fixing a configuration sees all problems in one pass.
package validate

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/faultmap/plotgridgo/config"
)

// sigtestCases is the closed set of significance-test case identifiers.
var sigtestCases = map[string]struct{}{
	"sigtested": {},
	"nosigtest": {},
}

// FieldError is a single field-level contract violation.
type FieldError struct {
	Path   string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// JobError aggregates every violation found on one plot job.
type JobError struct {
	Figure string
	Index  int
	Fields []FieldError
}

func (e *JobError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("figure %q job %d: %s", e.Figure, e.Index, strings.Join(msgs, "; "))
}

// Job validates one plot job against the estimator registry and the
// plot-type field contracts. It returns nil or a *JobError carrying every
// violation.
func Job(estimators *Estimators, job *config.PlotJob) error {
	var fields []FieldError
	add := func(path, format string, args ...any) {
		fields = append(fields, FieldError{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if !estimators.Known(job.WeightMethod) {
		add("weight_method", "unknown estimator %q (known: %v)", job.WeightMethod, estimators.Names())
	}
	if _, ok := sigtestCases[job.SigtestCase]; !ok {
		add("sigtest_case", "must be \"sigtested\" or \"nosigtest\", got %q", job.SigtestCase)
	}
	if job.LegendBBox != nil && len(job.LegendBBox) != 2 {
		add("legendbbox", "must be a 2-element coordinate pair, got %d elements", len(job.LegendBBox))
	}
	if job.BoxIndex != nil && *job.BoxIndex < 0 {
		add("boxindex", "must be non-negative, got %d", *job.BoxIndex)
	}
	checkAxisLimits(job.AxisLimits, add)

	switch job.PlotType {
	case config.PlotTimeSeries, config.PlotFFT:
		checkVarList("plotvars", job.PlotVars, add)
	case config.PlotValuesVsDelays, config.PlotValuesVsBoxes:
		if job.SourceVar == "" {
			add("sourcevars", "variable names must be non-empty strings")
		}
		checkVarList("destvars", job.DestVars, add)
	}

	if len(fields) == 0 {
		return nil
	}
	return &JobError{Figure: job.Figure, Index: job.Index, Fields: fields}
}

// checkAxisLimits enforces that axis_limits is absent, `false`, or a
// well-ordered numeric (xmin, xmax, ymin, ymax) tuple.
func checkAxisLimits(v cty.Value, add func(path, format string, args ...any)) {
	if v == cty.NilVal || v.IsNull() {
		return
	}
	if v.Type().Equals(cty.Bool) {
		if v.True() {
			add("axis_limits", "must be false or a (xmin, xmax, ymin, ymax) tuple, got true")
		}
		return
	}
	bounds, err := config.FloatList(v)
	if err != nil {
		add("axis_limits", "must be false or a numeric 4-tuple: %v", err)
		return
	}
	if len(bounds) != 4 {
		add("axis_limits", "must have exactly 4 elements (xmin, xmax, ymin, ymax), got %d", len(bounds))
		return
	}
	if bounds[0] >= bounds[1] {
		add("axis_limits", "xmin (%v) must be less than xmax (%v)", bounds[0], bounds[1])
	}
	if bounds[2] >= bounds[3] {
		add("axis_limits", "ymin (%v) must be less than ymax (%v)", bounds[2], bounds[3])
	}
}

func checkVarList(path string, vars []string, add func(path, format string, args ...any)) {
	if len(vars) == 0 {
		add(path, "must be a non-empty list of variable names")
		return
	}
	for i, name := range vars {
		if name == "" {
			add(fmt.Sprintf("%s[%d]", path, i), "variable names must be non-empty strings")
		}
	}
}
