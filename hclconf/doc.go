// Package hclconf loads plot batch configurations written in HCL (native or
// JSON syntax) and translates them into the format-agnostic model defined in
// the config package.
//
// Loading is a pure parse: no defaults are applied and no cross-field
// semantics are checked beyond the top-level shape. Repeated `defaults`
// blocks merge key by key with the last occurrence winning, across blocks and
// across files in load order; this gives the raw format's duplicate top-level
// keys a documented meaning instead of treating them as an error. Unknown
// figure attributes are carried through unvalidated so that configurations
// written for a newer front-end still load.
package hclconf
