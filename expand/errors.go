package expand

import (
	"fmt"

	"github.com/faultmap/plotgridgo/config"
)

// EmptyAxisError reports a combinatorial axis that resolved to an empty set.
// An empty product is never silently accepted as zero jobs; it signals a
// configuration mistake.
type EmptyAxisError struct {
	Figure string
	Axis   string
}

func (e *EmptyAxisError) Error() string {
	return fmt.Sprintf("figure %q: axis %q resolved to an empty set", e.Figure, e.Axis)
}

// UnsupportedPlotTypeError reports a plot type with no registered expansion
// rule.
type UnsupportedPlotTypeError struct {
	Figure   string
	PlotType config.PlotType
}

func (e *UnsupportedPlotTypeError) Error() string {
	return fmt.Sprintf("figure %q: no expansion rule registered for plot type %q", e.Figure, e.PlotType)
}
