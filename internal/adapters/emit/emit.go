// Package emit implements ports.ShellEmitter for each supported shell:
// thin template substitutors over an already-computed EnvVarsState, built
// on embedded text/template sources the way devbox's nix.Shell renders its
// hook scripts.
package emit

import (
	_ "embed"
	"io"
	"text/template"
)

//go:embed bash_hook.tmpl
var bashHookText string

//go:embed zsh_hook.tmpl
var zshHookText string

//go:embed fish_hook.tmpl
var fishHookText string

//go:embed nushell_hook.tmpl
var nushellHookText string

var (
	bashHookTmpl    = template.Must(template.New("bash_hook").Parse(bashHookText))
	zshHookTmpl     = template.Must(template.New("zsh_hook").Parse(zshHookText))
	fishHookTmpl    = template.Must(template.New("fish_hook").Parse(fishHookText))
	nushellHookTmpl = template.Must(template.New("nushell_hook").Parse(nushellHookText))
)

type hookData struct {
	HookPrefix    string
	ExportCommand string
}

func renderHook(w io.Writer, tmpl *template.Template, cliName, exportCommand string) error {
	return tmpl.Execute(w, hookData{HookPrefix: cliName, ExportCommand: exportCommand})
}
