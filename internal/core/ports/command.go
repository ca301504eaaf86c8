package ports

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=command.go -destination=mocks/mock_command.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and returns its captured standard output and standard error.
	Run(ctx context.Context, cmd domain.Command) (stdout, stderr []byte, err error)
}
