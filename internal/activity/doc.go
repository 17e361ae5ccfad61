// Package activity implements the cross-repository commit activity feed:
// scan window resolution, per-repository commit collection with filtering and
// early termination, concurrent fan-out across discovered repositories, the
// globally ordered merge with deterministic tie-breaking, and table or
// tab-separated rendering of the aggregate.
package activity
