// Package middleware provides composable wrappers around a corpus store.
package middleware

import "github.com/aretw0/graft/pkg/ports"

// Middleware allows wrapping a CorpusStore to add behavior.
type Middleware func(ports.CorpusStore) ports.CorpusStore

// Chain applies the middlewares to the store, first one outermost.
func Chain(store ports.CorpusStore, mws ...Middleware) ports.CorpusStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
