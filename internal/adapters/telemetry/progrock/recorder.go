// Package progrock implements ports.Telemetry/ports.Vertex using
// github.com/vito/progrock, adapted from bob's
// internal/adapters/telemetry/progrock.Recorder for profile-cache update
// progress reporting. bob's only consumer of the progrock.Tape was its
// bubbletea TUI, which envoluntary drops (spec.md §6's output contract is
// line-oriented shell-script text on stdout, which a TUI would corrupt), so
// this Recorder mirrors each vertex's start/finish/cache-hit directly to an
// io.Writer (os.Stderr in production) instead of leaving the tape unread.
package progrock

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/envoluntary/envoluntary/internal/core/ports"
)

// Recorder implements ports.Telemetry using a progrock.Tape for vertex
// hierarchy bookkeeping, mirroring human-readable progress lines to out.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	out  io.Writer
}

// New creates a Recorder with a fresh tape, mirroring progress lines to
// os.Stderr.
func New() ports.Telemetry {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Recorder that mirrors progress lines to out
// instead of os.Stderr, letting tests and alternate frontends capture them.
func NewWithWriter(out io.Writer) ports.Telemetry {
	tape := progrock.NewTape()
	rec := progrock.NewRecorder(tape)
	return &Recorder{tape: tape, rec: rec, out: out}
}

// Record starts recording a new vertex identified by the digest of its
// name, so repeated profile-cache updates for the same flake reference
// collapse onto the same vertex lineage, and prints a start line to out.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	_, _ = fmt.Fprintf(r.out, "==> %s\n", name)
	return ctx, &Vertex{vertex: v, name: name, out: r.out}
}

// Close flushes and closes the recording session. The `shell export`
// command defers this once per invocation so the tape is never left open.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
