package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/standings/schema"
)

// Placeholder shown in place of a team logo that could not be loaded.
const LogoPlaceholder = "load error"

// Color variables for console output. Backgrounds follow the usual
// competition colors of the continental cups.
var (
	ContinentalTopColor = color.New(color.Bold).AddBgRGB(0x1f, 0x3f, 0x9f) // deep blue
	ContinentalMidColor = color.New(color.Bold).AddBgRGB(0xd9, 0x6c, 0x00) // orange
	ContinentalLowColor = color.New(color.Bold).AddBgRGB(0x2e, 0x8b, 0x57) // green
	RelegationColor     = color.New(color.Bold).AddBgRGB(0xb2, 0x22, 0x22) // red
	PointsColor         = color.New(color.Bold)
)

// GetHighlightColor returns the console color of a highlight category, or nil for none.
func GetHighlightColor(h schema.Highlight) *color.Color {
	switch h {
	case schema.HighlightContinentalTop:
		return ContinentalTopColor
	case schema.HighlightContinentalMid:
		return ContinentalMidColor
	case schema.HighlightContinentalLow:
		return ContinentalLowColor
	case schema.HighlightRelegation:
		return RelegationColor
	default:
		return nil
	}
}

// GetPlainLabel returns the legend text of the highlight for a rank,
// or an empty string when the rank is not highlighted.
func GetPlainLabel(rank int) string {
	return schema.HighlightLabels[schema.HighlightForRank(rank)]
}

// GetColorRank returns the rank text painted with its highlight background.
// Ranks without a highlight are returned unstyled.
func GetColorRank(rank int) string {
	text := fmt.Sprintf(" %d ", rank)
	c := GetHighlightColor(schema.HighlightForRank(rank))
	if c == nil {
		return text
	}
	return c.Sprint(text)
}

// GetColorPoints returns the points value in bold.
func GetColorPoints(points int) string {
	return PointsColor.Sprint(points)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetArchiveDBFilePath returns the path to the SQLite DB file for archive storage.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".standings_archive.db"
	}
	return filepath.Join(homeDir, ".standings_archive.db")
}

// TruncateText shortens text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there's room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
