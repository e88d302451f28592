// Package orchestrator decides whether a field is valid and keeps the
// per-field validity status the presenter renders.
//
// Evaluate is the pure rule dispatch: empty values fail first, then the
// field's own predicate (or the strength threshold, or the confirmation
// equality) applies. Orchestrator wraps Evaluate with status bookkeeping:
// each validation clears the previous flag before setting the fresh one, so
// a rendered field never carries stale and fresh state together.
//
// Blur always validates. Input only re-validates a field that is currently
// invalid: a field being typed into can turn valid but never turns invalid
// mid-word.
package orchestrator
