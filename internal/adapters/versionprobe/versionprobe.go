// Package versionprobe enforces the minimum supported nix version, parsing
// `nix --version`'s output with Masterminds/semver/v3.
package versionprobe

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"

	"github.com/envoluntary/envoluntary/internal/core/domain"
	"github.com/envoluntary/envoluntary/internal/core/ports"
)

// MinVersion is the oldest nix release envoluntary supports, chosen for its
// stable `nix print-dev-env --json` output shape.
var MinVersion = semver.MustParse("2.10.0")

var versionToken = regexp.MustCompile(`\d+\.\d+\.\d+`)

// Probe implements ports.VersionProbe against a ports.NixRunner.
type Probe struct {
	runner ports.NixRunner
}

// New creates a Probe.
func New(runner ports.NixRunner) *Probe {
	return &Probe{runner: runner}
}

// CheckVersion runs `nix --version`, extracts the first semver-shaped token,
// and compares it against MinVersion.
func (p *Probe) CheckVersion(ctx context.Context) error {
	out, err := p.runner.Run(ctx, "--extra-experimental-features", "nix-command flakes", "--version")
	if err != nil {
		return err
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return domain.ErrNixVersionEmpty
	}

	token := versionToken.FindString(text)
	if token == "" {
		return zerr.With(domain.ErrNixVersionUnparsable, "output", text)
	}

	found, err := semver.NewVersion(token)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrNixVersionUnparsable.Error()), "token", token)
	}

	if found.LessThan(MinVersion) {
		return zerr.With(
			zerr.With(domain.ErrNixVersionTooOld, "found", found.String()),
			"minimum", MinVersion.String(),
		)
	}

	return nil
}
