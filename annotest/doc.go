// Package annotest provides test helpers for annolab: an embedded NATS
// server with JetStream, a KV bucket factory, and a logger that writes to
// the testing.T log.
//
// The embedded server runs in-process with a random port and a temp-dir
// store, so KV-backed tests need no Docker and can run in parallel.
package annotest
