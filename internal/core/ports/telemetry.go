package ports

import (
	"context"
	"io"
)

// Telemetry records the progress of pipeline steps.
type Telemetry interface {
	// Record starts recording a new vertex for one pipeline step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the step's output stream.
	Stdout() io.Writer
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex attaches the active vertex to the context so that
// adapters further down the call chain can stream output into it.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the active vertex, or nil when no step is
// being recorded.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
