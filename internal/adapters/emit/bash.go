package emit

import (
	"fmt"
	"io"

	"github.com/alessio/shellescape"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Bash implements ports.ShellEmitter for bash.
type Bash struct{}

// EmitState writes one `export NAME=VALUE;` or `unset NAME;` line per
// entry, in order.
func (Bash) EmitState(w io.Writer, state *domain.EnvVarsState) error {
	return emitPosixState(w, state)
}

// EmitHook writes bash's PROMPT_COMMAND-based prompt hook.
func (Bash) EmitHook(w io.Writer, cliName, exportCommand string) error {
	return renderHook(w, bashHookTmpl, cliName, exportCommand)
}

func emitPosixState(w io.Writer, state *domain.EnvVarsState) error {
	for _, key := range state.Keys() {
		v, _ := state.Get(key)
		var line string
		if v.Absent {
			line = fmt.Sprintf("unset %s;\n", shellescape.Quote(key))
		} else {
			line = fmt.Sprintf("export %s=%s;\n", shellescape.Quote(key), shellescape.Quote(v.Value))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
