package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/envdiff"
)

// Fish implements ports.ShellEmitter for fish. Delimited variables (PATH,
// XDG_DATA_DIRS) are split on ":" and passed as separate `set` arguments,
// since fish represents them as native lists rather than colon-joined
// strings.
type Fish struct{}

// EmitState writes one `set -x -g NAME VALUE;` or `set -e -g NAME;` line
// per entry, in order, splitting delimited variables into list form.
func (Fish) EmitState(w io.Writer, state *domain.EnvVarsState) error {
	delimited := envdiff.DefaultDelimitedVars()

	for _, key := range state.Keys() {
		v, _ := state.Get(key)
		var line string
		switch {
		case v.Absent:
			line = fmt.Sprintf("set -e -g %s;\n", shellescape.Quote(key))
		case delimited.Vars[key] != "":
			parts := strings.Split(v.Value, delimited.Vars[key])
			quoted := make([]string, len(parts))
			for i, p := range parts {
				quoted[i] = shellescape.Quote(p)
			}
			line = fmt.Sprintf("set -x -g %s %s;\n", shellescape.Quote(key), strings.Join(quoted, " "))
		default:
			line = fmt.Sprintf("set -x -g %s %s;\n", shellescape.Quote(key), shellescape.Quote(v.Value))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// EmitHook writes fish's fish_prompt/fish_preexec-based prompt hook, which
// also re-evaluates on PWD change.
func (Fish) EmitHook(w io.Writer, cliName, exportCommand string) error {
	return renderHook(w, fishHookTmpl, cliName, exportCommand)
}
