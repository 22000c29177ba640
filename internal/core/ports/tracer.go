package ports

import "context"

// Tracer starts spans around units of work.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is a unit of work in progress.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
