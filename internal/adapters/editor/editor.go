// Package editor implements ports.EditorLauncher by exec'ing the program
// against the target path and waiting for it to exit, mirroring the `edit`
// command's `cmd!(editor_program, config_path).start()?.wait()?` in the
// Rust original — envoluntary does not re-specify editor discovery or
// invocation beyond that.
package editor

import (
	"os"
	"os/exec"

	"go.trai.ch/zerr"
)

// Launcher implements ports.EditorLauncher.
type Launcher struct{}

// New creates a Launcher.
func New() *Launcher { return &Launcher{} }

// Launch runs program against path, inheriting the calling process's
// stdio so an interactive editor can take over the terminal, and blocks
// until it exits.
func (l *Launcher) Launch(program, path string) error {
	cmd := exec.Command(program, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "editor exited with an error"), "program", program)
	}
	return nil
}
