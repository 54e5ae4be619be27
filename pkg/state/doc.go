// Package state models one submission attempt of a form: the values the user
// posted and the per-field validation messages a validation step attached to
// them. Snapshots are immutable once built and carry deterministic ordering so
// renderers can derive stable output (per-field message lists in insertion
// order, FullMessages flattened field-by-field). Producers accumulate values
// and messages through a Builder; consumers only ever see the sealed Snapshot.
package state
