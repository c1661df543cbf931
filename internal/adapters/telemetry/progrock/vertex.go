package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder, and
// additionally mirrors its log lines and outcome to out.
type Vertex struct {
	vertex *progrock.VertexRecorder
	name   string
	out    io.Writer
}

// Log records a line of diagnostic output associated with this vertex,
// both on the underlying progrock vertex and on out.
func (v *Vertex) Log(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
	_, _ = fmt.Fprintf(v.out, "    %s: %s\n", v.name, msg)
}

// Complete marks the vertex as finished, printing its outcome to out.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
	if err != nil {
		_, _ = fmt.Fprintf(v.out, "!!! %s: %v\n", v.name, err)
		return
	}
	_, _ = fmt.Fprintf(v.out, "<== %s\n", v.name)
}

// Cached marks the vertex as a cache hit, printing a short-circuit line to
// out instead of a start/finish pair.
func (v *Vertex) Cached() {
	v.vertex.Cached()
	_, _ = fmt.Fprintf(v.out, "--- %s (cached)\n", v.name)
}
