package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/standings/schema"
)

// Default values for configuration.
const (
	DefaultDataDir     = "data"
	DefaultLogoSize    = 50
	MaxLogoSize        = 512
	DefaultLogoTimeout = 5 * time.Second
	MaxLogoBytes       = 5 << 20
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the viewer.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string
	Year       int
	League     schema.League
	View       schema.ViewMode
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	Logos       bool          // Fetch team logos for the text table
	LogoTimeout time.Duration // Deadline of a single logo fetch
	LogoSize    int           // Edge length of the resized logo bitmap

	ArchiveBackend   schema.DatabaseBackend
	ArchiveDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in status lines
	UseColors bool // Enable rank highlighting and bold points in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	DataDir          string `mapstructure:"data-dir"`
	Year             int    `mapstructure:"year"`
	League           string `mapstructure:"league"`
	View             string `mapstructure:"view"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from showCmd and browseCmd flags ---
	Logos       string `mapstructure:"logos"`
	LogoTimeout string `mapstructure:"logo-timeout"`
	LogoSize    int    `mapstructure:"logo-size"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Selection returns the (year, league, view) triple of the config.
func (c *Config) Selection() schema.Selection {
	return schema.Selection{Year: c.Year, League: c.League, View: c.View}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateSelection(cfg, input); err != nil {
		return err
	}
	if err := processLogoOptions(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("archive-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseArchiveBackend resolves a backend name case-insensitively.
// An empty name selects SQLite.
func ParseArchiveBackend(name string) (schema.DatabaseBackend, error) {
	if name == "" {
		return schema.SQLiteBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(name))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid archive backend '%s'. must be sqlite, mysql, postgresql, none", name)
	}
	return backend, nil
}

// validateBackendConfigs validates the archive backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseArchiveBackend(input.ArchiveBackend)
	if err != nil {
		return err
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect
	return ValidateDatabaseConnectionString(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.DataDir = input.DataDir
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	// --- 2. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	return nil
}

// validateSelection resolves the year, league and view to show.
func validateSelection(cfg *Config, input *ConfigRawInput) error {
	cfg.Year = input.Year
	if cfg.Year == 0 {
		cfg.Year = schema.DefaultYear
	}
	if !schema.IsSupportedYear(cfg.Year) {
		return fmt.Errorf("unsupported year %d. must be one of %v", input.Year, schema.SupportedYears)
	}

	league := input.League
	if league == "" {
		league = string(schema.PremierLeague)
	}
	l, ok := schema.LeagueFromName(league)
	if !ok {
		return fmt.Errorf("unsupported league '%s'. must be premier-league, la-liga, bundesliga", input.League)
	}
	cfg.League = l

	view := strings.ToLower(input.View)
	if view == "" {
		view = string(schema.FullView)
	}
	cfg.View = schema.ViewMode(view)
	if _, ok := schema.ValidViewModes[cfg.View]; !ok {
		return fmt.Errorf("invalid view '%s'. must be reduced, full", input.View)
	}
	return nil
}

// processLogoOptions parses the logo fetch settings.
func processLogoOptions(cfg *Config, input *ConfigRawInput) error {
	logos := input.Logos
	if logos == "" {
		logos = "yes"
	}
	enabled, err := ParseBoolString(logos)
	if err != nil {
		return fmt.Errorf("invalid --logos value: %w", err)
	}
	cfg.Logos = enabled

	cfg.LogoTimeout = DefaultLogoTimeout
	if input.LogoTimeout != "" {
		d, err := time.ParseDuration(input.LogoTimeout)
		if err != nil {
			return fmt.Errorf("invalid --logo-timeout value '%s': %w", input.LogoTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("logo-timeout must be positive (received %s)", input.LogoTimeout)
		}
		cfg.LogoTimeout = d
	}

	cfg.LogoSize = input.LogoSize
	if cfg.LogoSize == 0 {
		cfg.LogoSize = DefaultLogoSize
	}
	if cfg.LogoSize < 1 || cfg.LogoSize > MaxLogoSize {
		return fmt.Errorf("logo-size must be between 1 and %d (received %d)", MaxLogoSize, input.LogoSize)
	}
	return nil
}
