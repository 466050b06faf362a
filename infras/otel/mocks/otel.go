package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel records the name of every span opened through it.
type Otel struct {
	mu    sync.Mutex
	spans []string
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.spans = append(o.spans, spanName)

	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns the span names opened so far, oldest first.
func (o *Otel) Spans() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]string(nil), o.spans...)
}

func NewOtel() *Otel {
	return &Otel{}
}
