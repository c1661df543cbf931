package emit

import (
	"io"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Nushell implements ports.ShellEmitter for nushell. Nushell's `load-env`
// consumes JSON, so its export grammar is identical to JSON's; only the
// hook differs, wiring the export command into env_change.PWD and
// pre_execution hooks via `from json | load-env`.
type Nushell struct{}

// EmitState writes the same `{ NAME: value | null }` object JSON does.
func (Nushell) EmitState(w io.Writer, state *domain.EnvVarsState) error {
	return writeStateObject(w, state)
}

// EmitHook writes nushell's env_change/pre_execution hook.
func (Nushell) EmitHook(w io.Writer, cliName, exportCommand string) error {
	return renderHook(w, nushellHookTmpl, cliName, exportCommand)
}
