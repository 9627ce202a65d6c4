// Package config provides the format-agnostic model of a plot batch
// configuration. Its core purpose is to give the rest of the engine a
// strongly-typed, in-memory representation of the user's figure definitions,
// independent of the serialization they were loaded from.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Model: the root container for one configuration. It aggregates the
//     merged top-level defaults and all figure specs, preserving their
//     declaration order.
//
//   - FigureSpec: a named template describing one family of plots and its
//     axes of variation (scenarios, weight methods, significance-test cases).
//     Plot-type-specific fields live in a PlotParams variant, so "required
//     for this plot type" is a structural property rather than an ad hoc
//     check over a bag of optional fields.
//
//   - PlotJob: one fully resolved, concrete unit of plot-generation work.
//     Jobs are immutable value objects produced by expansion and consumed
//     by a rendering collaborator; they are never mutated after emission.
//
// Why a separate model package?
//
// This package acts as the intermediate layer between the HCL loader and the
// processing stages. Resolution, expansion, and validation all operate on
// this model and never touch raw configuration bodies, which keeps those
// stages pure and lets them be tested without any files on disk.
package config
