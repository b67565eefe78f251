package ports

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Tracer opens spans around the phases of a run.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced phase.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
