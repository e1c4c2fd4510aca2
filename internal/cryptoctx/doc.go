// Package cryptoctx opens and closes engine context handles.
//
// A Context is owned by the call that opened it and must be closed exactly
// once. Manager.Do is the usual entry point: it opens a context, runs the
// operation, and closes the context on every exit path. When both the
// operation and the close fail, the operation failure comes first in the
// returned error and the close failure is logged.
package cryptoctx
