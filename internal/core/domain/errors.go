package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound reports that no config file exists at the resolved path.
	// The resolver does not return it: a missing config file reads as an empty one.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidPattern is returned when a regex pattern fails to compile.
	ErrInvalidPattern = zerr.New("invalid pattern")

	// ErrHomeNotFound is returned when $HOME cannot be determined.
	ErrHomeNotFound = zerr.New("could not determine home directory")

	// ErrEditorNotFound is returned when no editor program is configured or discoverable.
	ErrEditorNotFound = zerr.New("could not determine editor program")

	// ErrNoFilesToHash is returned when every watched file for a local flake is missing.
	ErrNoFilesToHash = zerr.New("no files found to hash")

	// ErrNixCommandFailed is returned when a nix subprocess exits non-zero.
	ErrNixCommandFailed = zerr.New("nix command failed")

	// ErrNixVersionEmpty is returned when `nix --version` produces no stdout.
	ErrNixVersionEmpty = zerr.New("nix --version produced no output")

	// ErrNixVersionUnparsable is returned when no version token could be found in `nix --version`'s output.
	ErrNixVersionUnparsable = zerr.New("could not find a version number in nix --version output")

	// ErrNixVersionTooOld is returned when the installed nix is older than the minimum supported version.
	ErrNixVersionTooOld = zerr.New("nix version is too old")

	// ErrHarvestFailed is returned when the bash harvester's child process fails.
	ErrHarvestFailed = zerr.New("bash harvest failed")

	// ErrBlobDecodeFailed is returned when a stored env-state blob cannot be decoded.
	ErrBlobDecodeFailed = zerr.New("failed to decode env state blob")

	// ErrCurrentDirUnavailable is returned when the process's current directory cannot be read.
	ErrCurrentDirUnavailable = zerr.New("could not read current directory")
)
