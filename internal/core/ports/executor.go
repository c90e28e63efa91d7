// Package ports defines the core interfaces for the release pipeline.
package ports

import (
	"context"

	"go.trai.ch/shipwright/internal/core/domain"
)

// Executor runs external collaborator tools (package managers, freeze
// scripts, packaging toolchains).
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command and blocks until it exits. A nonzero exit
	// status is returned as an error carrying the exit code; output is
	// streamed to the logger line by line.
	Run(ctx context.Context, cmd *domain.Command) error
}
