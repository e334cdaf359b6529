// Package graph turns parsed configuration files into the entity and
// relationship model served to visualization tooling.
//
// A Builder owns the per-call registry: files are folded in one at a time,
// entities are keyed by canonical identifier with last-write-wins overwrite
// semantics, and one relationship is emitted per discovered dependency. The
// Builder is created for a single extraction run and discarded with it;
// there is no process-wide state.
package graph
