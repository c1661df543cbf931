package ports

import "context"

// Vertex represents one unit of work (a profile-cache update step) that can
// be recorded for progress reporting.
type Vertex interface {
	// Log records a line of diagnostic output associated with this vertex.
	Log(msg string)
	// Complete marks the vertex as finished (successfully or with an error).
	Complete(err error)
	// Cached marks the vertex as a cache hit — no work was done.
	Cached()
}

// Telemetry is the factory for recording profile-cache progress vertices.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}
