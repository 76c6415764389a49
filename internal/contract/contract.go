// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"image"
	"time"

	"github.com/huangsam/standings/schema"
)

// SnapshotLoader reads a standings snapshot for a (year, league) selection.
// This allows the viewer and MCP surfaces to be tested without files on disk.
type SnapshotLoader interface {
	// Load returns the reduced and full projections of one snapshot.
	Load(year int, league schema.League) (reduced, full schema.Table, err error)

	// LoadRows returns every flattened row of one snapshot.
	LoadRows(year int, league schema.League) ([]schema.FlatRow, error)
}

// LogoFetcher retrieves and decodes a team logo.
type LogoFetcher interface {
	// Fetch downloads the image at url and returns it resized to a square bitmap.
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// ArchiveStore defines the interface for archiving flattened standings.
type ArchiveStore interface {
	// PushSnapshot replaces the stored rows of a (year, league) snapshot
	PushSnapshot(year int, league schema.League, rows []schema.FlatRow, pushedAt time.Time) error

	// GetRows returns the stored rows of a snapshot ordered by rank
	GetRows(year int, league schema.League) ([]schema.FlatRow, error)

	// GetStatus returns status information about the archive
	GetStatus() (schema.ArchiveStatus, error)

	// Clear removes every archived row
	Clear() error

	// Close closes the underlying connection
	Close() error
}
