package mocks

import (
	"context"
	"petcare/infras/otel"
	"sync"
)

// Otel hands out scopes that record what they were told instead of exporting it.
type Otel struct {
	mu    sync.Mutex
	spans []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := NewScope(spanName)

	o.mu.Lock()
	o.spans = append(o.spans, scope)
	o.mu.Unlock()

	return ctx, scope
}

func (o *Otel) Close() error {
	return nil
}

// Span returns the most recent scope opened under name, or nil.
func (o *Otel) Span(name string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := len(o.spans) - 1; i >= 0; i-- {
		if o.spans[i].Name == name {
			return o.spans[i]
		}
	}

	return nil
}
