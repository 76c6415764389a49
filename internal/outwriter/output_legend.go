package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
)

// legendRanges is the rank span of each highlight category.
var legendRanges = map[schema.Highlight]string{
	schema.HighlightContinentalTop: "1-4",
	schema.HighlightContinentalMid: "5-6",
	schema.HighlightContinentalLow: "7-8",
	schema.HighlightRelegation:     "18-20",
}

// PrintLegend writes the highlight legend to the configured output file or stdout.
func PrintLegend(cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeLegend(w, cfg.UseColors)
	}, "Wrote legend")
}

// writeLegend writes one line with every highlight category in legend order.
func writeLegend(w io.Writer, useColors bool) error {
	parts := make([]string, 0, len(schema.LegendOrder))
	for _, h := range schema.LegendOrder {
		parts = append(parts, legendEntry(h, useColors))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

func legendEntry(h schema.Highlight, useColors bool) string {
	label := schema.HighlightLabels[h]
	if c := contract.GetHighlightColor(h); useColors && c != nil {
		return c.Sprint(" "+legendRanges[h]+" ") + " " + label
	}
	return fmt.Sprintf("[%s] %s", legendRanges[h], label)
}
