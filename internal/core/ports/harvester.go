package ports

import (
	"context"

	"github.com/envoluntary/envoluntary/internal/core/domain"
)

// BashHarvester sources or evaluates a script in a bash child process and
// captures the resulting environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=harvester.go -destination=mocks/mock_harvester.go -package=mocks
type BashHarvester interface {
	// HarvestFile sources the file at path and returns the resulting
	// environment, seeded with seed before sourcing.
	HarvestFile(ctx context.Context, path string, seed *domain.EnvVars) (*domain.EnvVars, error)

	// HarvestScript evaluates the inline script and returns the resulting
	// environment, seeded with seed before evaluation.
	HarvestScript(ctx context.Context, script string, seed *domain.EnvVars) (*domain.EnvVars, error)
}
