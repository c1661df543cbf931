package emit

import (
	"encoding/json"
	"io"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// JSON implements ports.ShellEmitter for the `json` output shape: a single
// object `{ NAME: value | null }`. It has no prompt hook of its own; callers
// drive it from another shell's hook (see Nushell).
type JSON struct{}

// EmitState writes one JSON object mapping present variables to their
// string value and absent ones to null.
func (JSON) EmitState(w io.Writer, state *domain.EnvVarsState) error {
	return writeStateObject(w, state)
}

// EmitHook is not meaningful for raw JSON output; it writes nothing.
func (JSON) EmitHook(w io.Writer, cliName, exportCommand string) error {
	return nil
}

func writeStateObject(w io.Writer, state *domain.EnvVarsState) error {
	obj := make(map[string]*string, state.Len())
	for _, key := range state.Keys() {
		v, _ := state.Get(key)
		if v.Absent {
			obj[key] = nil
		} else {
			value := v.Value
			obj[key] = &value
		}
	}
	if len(obj) == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}
	return json.NewEncoder(w).Encode(obj)
}
