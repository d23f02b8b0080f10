// Package context provides a context that outlives the request it was taken from
package context

import (
	"context"
	"time"
)

type DetachedContext struct {
	parent context.Context
}

// Detach keeps the values of ctx but drops its deadline and cancellation. Work started from a
// handler that must finish after the response is written runs on it.
func Detach(ctx context.Context) context.Context {
	return DetachedContext{ctx}
}

func (d DetachedContext) Deadline() (deadline time.Time, ok bool) {
	return time.Time{}, false
}

func (d DetachedContext) Done() <-chan struct{} {
	return nil
}

func (d DetachedContext) Err() error {
	return nil
}

func (d DetachedContext) Value(key any) any {
	return d.parent.Value(key)
}
