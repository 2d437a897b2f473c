// Package source provides in-memory implementations of the task, worker,
// and label collaborator interfaces.
//
// The Static source holds fixed lists that can be swapped wholesale and
// accepts label/review submissions with upsert semantics. It is useful for
// tests and for scenarios where the task set is known at import time; in
// production deployments these contracts are usually backed by a database
// (see store/mongo).
package source
