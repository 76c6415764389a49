// Package outwriter has output and writer logic.
package outwriter

import (
	"context"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/internal/logo"
	"github.com/huangsam/standings/schema"
)

// CellRenderer turns a logo URL into the text of a table cell.
type CellRenderer interface {
	Cell(ctx context.Context, url string) string
}

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteStandings prints a projected table using the configured output format.
func (ow *OutWriter) WriteStandings(ctx context.Context, table schema.Table, sel schema.Selection, cfg *contract.Config) error {
	logos := logo.NewRendererFromConfig(cfg, GetMaxLogoWidth(cfg, sel.View))
	return WriteStandingsResults(ctx, table, sel, cfg, logos)
}

// WriteLegend prints the highlight legend.
func (ow *OutWriter) WriteLegend(cfg *contract.Config) error {
	return PrintLegend(cfg)
}
