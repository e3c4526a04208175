package mcp

import (
	"context"

	"github.com/plonkout/plonkout/internal/models"
	"github.com/plonkout/plonkout/internal/storage"
)

// DataSource abstracts the data layer for MCP tools so tests can swap in a
// fake without a real database file.
type DataSource interface {
	ListWorkouts(ctx context.Context) ([]models.Workout, error)
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetDataStats(ctx context.Context) (*storage.DataStats, error)
	ExportAll(ctx context.Context) (*storage.ExportDocument, error)
}

// Compile-time check: *storage.Store satisfies DataSource.
var _ DataSource = (*storage.Store)(nil)
