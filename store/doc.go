// Package store defines the persistence boundary for model graphs:
// [Store] is the contract a real backend (a database, an object store, a
// version-control-backed blob store) implements, and [MemoryStore] is the
// in-memory reference implementation used by this module's own tests.
//
// A [Snapshot] pairs a project name and a commit identifier with the
// canonical JSON rendering of a graph (see the codec package) and
// free-form metadata. Writing the same (project, commit) pair twice is a
// conflict, not an overwrite — snapshots are immutable once written, the
// same way a version-control commit is.
package store
