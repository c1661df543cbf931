package ports

import "github.com/envoluntary/envoluntary/internal/core/domain"

// DirectoryResolver matches a directory against the configured entries and
// loads/saves the backing TOML config file.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DirectoryResolver interface {
	// Match returns the configured entries whose pattern (and, if set,
	// pattern_adjacent) matches dir, in file order.
	Match(dir string) ([]domain.ConfigEntry, error)

	// AddEntry validates pattern and patternAdjacent (if non-empty),
	// appends a new entry, and rewrites the config file.
	AddEntry(pattern, flakeReference, patternAdjacent string, impure *bool) error

	// Entries returns every configured entry in file order.
	Entries() ([]domain.ConfigEntry, error)

	// ConfigPath returns the path of the backing config file.
	ConfigPath() string
}
