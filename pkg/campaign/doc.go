// Package campaign drives a domain against a property: generate, mutate,
// detect failures, shrink them to minimal reproducers, and persist the
// result to a corpus store.
//
// The runner is deliberately not coverage-guided; it is the thin search
// loop the domain layer is designed to be consumed by. Each runner owns
// one corpus value and one rand stream, so independent runners can be
// driven concurrently by separate workers.
package campaign
