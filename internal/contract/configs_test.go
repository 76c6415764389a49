package contract

import (
	"testing"
	"time"

	"github.com/huangsam/standings/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Year:   2022,
		League: "premier-league",
		View:   "full",
		Output: "text",
		Emoji:  "no",
		Color:  "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", modify: func(*ConfigRawInput) {}},
		{name: "league display name", modify: func(in *ConfigRawInput) { in.League = "La Liga" }},
		{name: "reduced view uppercase", modify: func(in *ConfigRawInput) { in.View = "REDUCED" }},
		{name: "unsupported year", modify: func(in *ConfigRawInput) { in.Year = 2019 }, expectError: true},
		{name: "unsupported league", modify: func(in *ConfigRawInput) { in.League = "serie-a" }, expectError: true},
		{name: "invalid view", modify: func(in *ConfigRawInput) { in.View = "compact" }, expectError: true},
		{name: "invalid output", modify: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", modify: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{
			name: "parquet with file",
			modify: func(in *ConfigRawInput) {
				in.Output = "parquet"
				in.OutputFile = "out.parquet"
			},
		},
		{name: "invalid color", modify: func(in *ConfigRawInput) { in.Color = "maybe" }, expectError: true},
		{name: "invalid emoji", modify: func(in *ConfigRawInput) { in.Emoji = "sure" }, expectError: true},
		{name: "negative width", modify: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "invalid logos", modify: func(in *ConfigRawInput) { in.Logos = "sometimes" }, expectError: true},
		{name: "bad logo timeout", modify: func(in *ConfigRawInput) { in.LogoTimeout = "soon" }, expectError: true},
		{name: "zero logo timeout", modify: func(in *ConfigRawInput) { in.LogoTimeout = "0s" }, expectError: true},
		{name: "logo size too large", modify: func(in *ConfigRawInput) { in.LogoSize = 4096 }, expectError: true},
		{name: "invalid backend", modify: func(in *ConfigRawInput) { in.ArchiveBackend = "mongo" }, expectError: true},
		{
			name:        "mysql without connection",
			modify:      func(in *ConfigRawInput) { in.ArchiveBackend = "mysql" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.modify(input)

			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, &ConfigRawInput{Output: "text", Emoji: "no", Color: "no"})
	require.NoError(t, err)

	assert.Equal(t, schema.DefaultYear, cfg.Year)
	assert.Equal(t, schema.PremierLeague, cfg.League)
	assert.Equal(t, schema.FullView, cfg.View)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.True(t, cfg.Logos)
	assert.Equal(t, DefaultLogoTimeout, cfg.LogoTimeout)
	assert.Equal(t, DefaultLogoSize, cfg.LogoSize)
	assert.Equal(t, schema.SQLiteBackend, cfg.ArchiveBackend)
	assert.False(t, cfg.UseColors)
}

func TestProcessAndValidateLogoOptions(t *testing.T) {
	input := validInput()
	input.Logos = "no"
	input.LogoTimeout = "750ms"
	input.LogoSize = 24

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.False(t, cfg.Logos)
	assert.Equal(t, 750*time.Millisecond, cfg.LogoTimeout)
	assert.Equal(t, 24, cfg.LogoSize)
}

func TestConfigSelectionAndClone(t *testing.T) {
	cfg := &Config{Year: 2021, League: schema.Bundesliga, View: schema.ReducedView}
	assert.Equal(t, schema.Selection{Year: 2021, League: schema.Bundesliga, View: schema.ReducedView}, cfg.Selection())

	clone := cfg.Clone()
	clone.Year = 2020
	assert.Equal(t, 2021, cfg.Year)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/standings", false},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/standings", true},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=u password=p dbname=standings", false},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost user=u", true},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=standings", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseArchiveBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    schema.DatabaseBackend
		wantErr bool
	}{
		{"", schema.SQLiteBackend, false},
		{"sqlite", schema.SQLiteBackend, false},
		{"SQLite", schema.SQLiteBackend, false},
		{"MySQL", schema.MySQLBackend, false},
		{"PostgreSQL", schema.PostgreSQLBackend, false},
		{"NONE", schema.NoneBackend, false},
		{"oracle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArchiveBackend(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessAndValidateBackendIgnoresCase(t *testing.T) {
	input := validInput()
	input.ArchiveBackend = "SQLite"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.SQLiteBackend, cfg.ArchiveBackend)
}
