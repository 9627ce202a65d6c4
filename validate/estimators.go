package validate

import (
	"fmt"
	"sort"
)

// Estimators is the registry of known weight-method identifiers. The engine
// ships the estimators the analysis pipeline implements; embedding callers
// register additional ones before validation runs.
type Estimators struct {
	known map[string]struct{}
}

// NewEstimators creates an empty estimator registry.
func NewEstimators() *Estimators {
	return &Estimators{known: make(map[string]struct{})}
}

// DefaultEstimators returns a fresh registry carrying the built-in
// estimators.
func DefaultEstimators() *Estimators {
	e := NewEstimators()
	for _, name := range []string{
		"transfer_entropy_kernel",
		"transfer_entropy_kraskov",
		"cross_correlation",
	} {
		e.Register(name)
	}
	return e
}

// Register adds an estimator identifier. Registering the same identifier
// twice is a programming error.
func (e *Estimators) Register(name string) {
	if _, exists := e.known[name]; exists {
		panic(fmt.Sprintf("estimator '%s' already registered", name))
	}
	e.known[name] = struct{}{}
}

// Known reports whether name identifies a registered estimator.
func (e *Estimators) Known(name string) bool {
	_, ok := e.known[name]
	return ok
}

// Names returns the registered identifiers in sorted order, for error
// messages.
func (e *Estimators) Names() []string {
	out := make([]string, 0, len(e.known))
	for name := range e.known {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
