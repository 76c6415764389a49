package outwriter

import (
	"os"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"golang.org/x/term"
)

// GetTerminalWidth returns the width override from the config, the detected
// terminal width, or a conservative default.
func GetTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80 // Conservative default for narrow terminals and CI
	}
	return detectedWidth
}

// GetMaxLogoWidth calculates the maximum width of the logo column when it shows
// URLs instead of swatches, based on terminal width and the selected view.
func GetMaxLogoWidth(cfg *contract.Config, view schema.ViewMode) int {
	termWidth := GetTerminalWidth(cfg)

	// Reserve space for rank, team name and the count columns with borders/padding
	baseWidth := 95
	if view == schema.FullView {
		baseWidth += 70 // Home and away columns
	}

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
