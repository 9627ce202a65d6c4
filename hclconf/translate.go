package hclconf

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/faultmap/plotgridgo/config"
	"github.com/faultmap/plotgridgo/schema"
)

// translate converts decoded documents into the agnostic model, in document
// order.
func (l *Loader) translate(docs []*schema.Document) (*config.Model, error) {
	model := &config.Model{}
	seen := make(map[string]struct{})

	for _, doc := range docs {
		for _, block := range doc.Defaults {
			mergeDefaults(&model.Defaults, block)
		}
		for _, fig := range doc.Figures {
			if _, dup := seen[fig.Name]; dup {
				return nil, &SchemaError{Figure: fig.Name, Detail: "figure name declared more than once"}
			}
			seen[fig.Name] = struct{}{}

			spec, err := l.translateFigure(fig)
			if err != nil {
				return nil, err
			}
			model.Figures = append(model.Figures, spec)
		}
	}
	return model, nil
}

// mergeDefaults folds one defaults block into the accumulated defaults.
// Later blocks win key by key; a key the block does not set leaves the
// accumulated value untouched. This is the engine's documented resolution of
// the raw format's duplicate top-level keys.
func mergeDefaults(dst *config.Defaults, block *schema.Defaults) {
	if block.Graphs != nil {
		dst.Graphs = block.Graphs
	}
	if block.WeightMethods != nil {
		dst.WeightMethods = block.WeightMethods
	}
	if block.SigtestCases != nil {
		dst.SigtestCases = block.SigtestCases
	}
}

func (l *Loader) translateFigure(fig *schema.Figure) (*config.FigureSpec, error) {
	plotType := config.PlotType(fig.PlotType)
	rule, ok := l.registry.Rule(plotType)
	if !ok {
		return nil, &SchemaError{
			Figure: fig.Name,
			Detail: fmt.Sprintf("unrecognized plot type %q (known: %v)", fig.PlotType, l.registry.Types()),
		}
	}

	attrs, err := evalAttributes(fig)
	if err != nil {
		return nil, err
	}

	spec := &config.FigureSpec{
		Name:      fig.Name,
		PlotType:  plotType,
		DeclRange: fig.Body.MissingItemRange(),
	}
	if err := decodeCommon(spec, attrs); err != nil {
		return nil, &SchemaError{Figure: fig.Name, Detail: "invalid attribute", Err: err}
	}

	params, err := rule.Decode(attrs)
	if err != nil {
		return nil, &SchemaError{Figure: fig.Name, Detail: "invalid attribute", Err: err}
	}
	spec.Params = params

	// Whatever the common fields and the plot type's rule did not consume is
	// passed through unvalidated.
	if len(attrs) > 0 {
		spec.Extra = attrs
	}
	return spec, nil
}

// evalAttributes evaluates every attribute of a figure body to a concrete
// value. Figure bodies carry no expressions referencing other parts of the
// configuration, so evaluation uses a nil context.
func evalAttributes(fig *schema.Figure) (map[string]cty.Value, error) {
	raw, diags := fig.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, &SchemaError{Figure: fig.Name, Detail: "malformed figure body", Err: diags}
	}
	attrs := make(map[string]cty.Value, len(raw))
	for name, attr := range raw {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, &SchemaError{Figure: fig.Name, Detail: "failed to evaluate attribute " + name, Err: diags}
		}
		attrs[name] = v
	}
	return attrs, nil
}

// decodeCommon pulls the attributes shared by every plot type out of attrs.
func decodeCommon(spec *config.FigureSpec, attrs map[string]cty.Value) error {
	take := func(name string) (cty.Value, bool) {
		v, ok := attrs[name]
		if ok {
			delete(attrs, name)
		}
		return v, ok
	}

	var err error
	if v, ok := take("scenarios"); ok {
		if spec.Scenarios, err = config.StringList(v); err != nil {
			return fmt.Errorf("scenarios: %w", err)
		}
	}
	if v, ok := take("weight_methods"); ok {
		if spec.WeightMethods, err = config.StringList(v); err != nil {
			return fmt.Errorf("weight_methods: %w", err)
		}
	}
	if v, ok := take("sigtest_cases"); ok {
		if spec.SigtestCases, err = config.StringList(v); err != nil {
			return fmt.Errorf("sigtest_cases: %w", err)
		}
	}
	if v, ok := take("settings"); ok {
		if spec.Settings, err = config.String(v); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
	}
	if v, ok := take("starttime"); ok {
		f, err := config.Float(v)
		if err != nil {
			return fmt.Errorf("starttime: %w", err)
		}
		spec.StartTime = &f
	}
	if v, ok := take("legendbbox"); ok {
		if spec.LegendBBox, err = config.FloatList(v); err != nil {
			return fmt.Errorf("legendbbox: %w", err)
		}
	}
	if v, ok := take("linelabels"); ok {
		if spec.LineLabels, err = config.StringList(v); err != nil {
			return fmt.Errorf("linelabels: %w", err)
		}
	}
	// axis_limits is either `false` or a 4-tuple; its shape is a validator
	// concern, so the raw value rides along untouched.
	if v, ok := take("axis_limits"); ok {
		spec.AxisLimits = v
	}
	return nil
}
