package ports

import (
	"io"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// ShellEmitter renders an EnvVarsState as shell-specific export/unset
// statements, and renders the prompt-hook boilerplate for one shell.
// Implementations are thin template substitutors — they do not reinterpret
// the state, only format it.
type ShellEmitter interface {
	// EmitState writes one export/unset line per entry in state, in order,
	// to w. Delimited variables (PATH, XDG_DATA_DIRS) may receive
	// shell-specific list syntax.
	EmitState(w io.Writer, state *domain.EnvVarsState) error

	// EmitHook writes the shell-idiomatic prompt-hook template that arranges
	// for `<cli> shell export <shell>` to run on every prompt.
	EmitHook(w io.Writer, cliName, exportCommand string) error
}
