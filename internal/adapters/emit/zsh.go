package emit

import (
	"io"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// Zsh implements ports.ShellEmitter for zsh. Its export grammar is
// byte-for-byte the same as Bash's; only the hook differs (precmd_functions
// and chpwd_functions instead of PROMPT_COMMAND).
type Zsh struct{}

// EmitState writes one `export NAME=VALUE;` or `unset NAME;` line per
// entry, in order.
func (Zsh) EmitState(w io.Writer, state *domain.EnvVarsState) error {
	return emitPosixState(w, state)
}

// EmitHook writes zsh's precmd/chpwd-based prompt hook.
func (Zsh) EmitHook(w io.Writer, cliName, exportCommand string) error {
	return renderHook(w, zshHookTmpl, cliName, exportCommand)
}
