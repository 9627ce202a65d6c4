// Package expand turns resolved figure specs into concrete plot jobs.
//
// Each plot type is described by a Rule held in a Registry, mirroring how
// runnable types are registered elsewhere in this codebase: the rule knows
// how to decode the plot-type-specific attributes of a figure body and how to
// enumerate the innermost expansion axis. The expansion itself is a lazy,
// restartable sequence over the Cartesian product
//
//	scenarios × weight_methods × sigtest_cases × variant axis
//
// in exactly that loop order, outermost first. Downstream golden-file
// comparisons rely on this ordering, so it is part of the package contract,
// not an implementation detail.
package expand
