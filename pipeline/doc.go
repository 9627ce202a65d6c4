/*
Package pipeline orchestrates the full transformation from a loaded
configuration model to the normalized job list handed to a rendering
collaborator:

	resolve → expand → validate → emit

Figures are processed independently; nothing in the pipeline reads or writes
cross-figure state, so the per-figure work is distributed over a small worker
pool. The output is nevertheless deterministic: jobs are assembled in figure
declaration order regardless of which worker finished first.

Failure semantics are per figure. A figure that fails resolution, expansion,
or validation is recorded in Result.Failures and does not prevent sibling
figures from producing jobs. Validation problems are aggregated per job and
reported together, so one pass over a broken configuration surfaces every
violation.

When a Renderer is supplied, emitted jobs are dispatched to it one at a time
in output order. Cancellation is honored at job granularity: remaining jobs
are abandoned, and every job already handed to the renderer remains valid and
independently usable.
*/
package pipeline
