// Package cow provides a reference-counted, copy-on-write cell for state
// that needs to be shared across goroutines without locking.
//
// A [Cell] owns one value. [Cell.Retain] hands out read-only snapshots that
// may be read concurrently by any number of goroutines. Mutation clones the
// value only while at least one snapshot is outstanding; a sole owner
// mutates in place with no allocation.
//
// This lets a reactor ship the current state to a rendering goroutine
// without forcing every subsequent dispatch to pay a full clone: the clone
// cost is paid per mutation only while a snapshot is actually held.
package cow
