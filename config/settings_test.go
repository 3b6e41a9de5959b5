package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	settings := AnalyzerSettings{
		Sources: SourceSettings{Cast: "custom_cast.txt"},
		Limits:  LimitSettings{TopBilled: 7},
	}
	settings.ApplyDefaults()

	assert.Equal(t, "custom_cast.txt", settings.Sources.Cast)
	assert.Equal(t, "imdb_movies_toprated.txt", settings.Sources.Rated)
	assert.Equal(t, "imdb_movies_gross.txt", settings.Sources.Gross)
	assert.Equal(t, FormatText, settings.Format)
	assert.Equal(t, 7, settings.Limits.TopBilled)
	assert.Equal(t, 10, settings.Limits.ProlificDirectors)
	assert.Equal(t, 4, settings.Limits.RatedCastMinAppearances)
	// zero header rows is a valid choice and must survive defaults
	assert.Equal(t, 0, settings.HeaderRows)
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, 1, settings.HeaderRows)
	assert.Empty(t, settings.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(*AnalyzerSettings)
		expectedErrors int
		description    string
	}{
		{
			name:           "defaults are valid",
			modify:         func(s *AnalyzerSettings) {},
			expectedErrors: 0,
			description:    "Default settings should pass validation",
		},
		{
			name: "blank source path",
			modify: func(s *AnalyzerSettings) {
				s.Sources.Rated = "   "
			},
			expectedErrors: 1,
			description:    "Whitespace-only paths are rejected",
		},
		{
			name: "negative header rows",
			modify: func(s *AnalyzerSettings) {
				s.HeaderRows = -1
			},
			expectedErrors: 1,
			description:    "Header rows cannot be negative",
		},
		{
			name: "negative limits",
			modify: func(s *AnalyzerSettings) {
				s.Limits.TopBilled = -2
				s.Limits.RatedCast = -1
			},
			expectedErrors: 2,
			description:    "Each negative limit is reported",
		},
		{
			name: "unknown format",
			modify: func(s *AnalyzerSettings) {
				s.Format = "xml"
			},
			expectedErrors: 1,
			description:    "Only text, json and yaml are supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.modify(&settings)

			errors := settings.Validate()

			if len(errors) != tt.expectedErrors {
				t.Errorf("Expected %d errors, got %d. Errors: %v", tt.expectedErrors, len(errors), errors)
				t.Logf("Description: %s", tt.description)
			}
		})
	}
}

func TestLoad_NoFile(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSettings(), settings)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analyzer.yaml")
	content := `
sources:
  cast: data/cast.tsv
  rated: data/rated.tsv
header_rows: 0
limits:
  top_billed: 3
  min_appearances: 2
format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	t.Setenv("MOVIES_LIMITS_TOP_BILLED", "8")
	t.Setenv("MOVIES_SOURCES_GROSS", "env/gross.tsv")

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/cast.tsv", settings.Sources.Cast)
	assert.Equal(t, "data/rated.tsv", settings.Sources.Rated)
	assert.Equal(t, "env/gross.tsv", settings.Sources.Gross)
	assert.Equal(t, 0, settings.HeaderRows)
	assert.Equal(t, 8, settings.Limits.TopBilled)
	assert.Equal(t, 2, settings.Limits.MinAppearances)
	assert.Equal(t, 20, settings.Limits.RatedCast)
	assert.Equal(t, FormatJSON, settings.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
