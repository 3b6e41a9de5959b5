// Package config provides configuration structures for the movie analyzer.
// It defines where the source files live and how many entries each ranked
// question reports.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables overriding settings,
	// e.g. MOVIES_SOURCES_CAST or MOVIES_LIMITS_TOP_BILLED.
	EnvPrefix = "MOVIES_"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SupportedFormats lists the report formats accepted by Format.
var SupportedFormats = []string{FormatText, FormatJSON, FormatYAML}

// SourceSettings holds the paths of the three input files.
type SourceSettings struct {
	Cast  string `json:"cast" yaml:"cast" mapstructure:"cast"`    // Cast list: rank, title, year, director, five billed cast members
	Rated string `json:"rated" yaml:"rated" mapstructure:"rated"` // Top rated list: rank, title, year, rating
	Gross string `json:"gross" yaml:"gross" mapstructure:"gross"` // Top grossing list: rank, title, year, profit
}

// LimitSettings caps how many entries each ranked question returns.
type LimitSettings struct {
	ProlificDirectors       int `json:"prolific_directors" yaml:"prolific_directors" mapstructure:"prolific_directors"`
	ProlificDirectorsTop    int `json:"prolific_directors_top" yaml:"prolific_directors_top" mapstructure:"prolific_directors_top"` // Same question, restricted to movies in all three lists
	ProlificCast            int `json:"prolific_cast" yaml:"prolific_cast" mapstructure:"prolific_cast"`
	MinAppearances          int `json:"min_appearances" yaml:"min_appearances" mapstructure:"min_appearances"`
	RatedCast               int `json:"rated_cast" yaml:"rated_cast" mapstructure:"rated_cast"`
	RatedCastMinAppearances int `json:"rated_cast_min_appearances" yaml:"rated_cast_min_appearances" mapstructure:"rated_cast_min_appearances"`
	ProfitableDirectors     int `json:"profitable_directors" yaml:"profitable_directors" mapstructure:"profitable_directors"`
	TopBilled               int `json:"top_billed" yaml:"top_billed" mapstructure:"top_billed"`
	ActorDirectorPairs      int `json:"actor_director_pairs" yaml:"actor_director_pairs" mapstructure:"actor_director_pairs"`
}

// AnalyzerSettings contains all configuration options for one analysis run.
type AnalyzerSettings struct {
	Sources    SourceSettings `json:"sources" yaml:"sources" mapstructure:"sources"`
	HeaderRows int            `json:"header_rows" yaml:"header_rows" mapstructure:"header_rows"` // Leading rows discarded from every file
	Limits     LimitSettings  `json:"limits" yaml:"limits" mapstructure:"limits"`
	Format     string         `json:"format" yaml:"format" mapstructure:"format"` // "text", "json" or "yaml"
}

// DefaultSettings returns settings matching the standard IMDB export file names.
func DefaultSettings() AnalyzerSettings {
	settings := AnalyzerSettings{HeaderRows: 1}
	settings.ApplyDefaults()
	return settings
}

// ApplyDefaults applies default values to zero-valued settings.
// HeaderRows is left alone: zero is a meaningful value for it.
func (settings *AnalyzerSettings) ApplyDefaults() {
	if settings.Sources.Cast == "" {
		settings.Sources.Cast = "imdb_movies_cast.txt"
	}
	if settings.Sources.Rated == "" {
		settings.Sources.Rated = "imdb_movies_toprated.txt"
	}
	if settings.Sources.Gross == "" {
		settings.Sources.Gross = "imdb_movies_gross.txt"
	}
	if settings.Format == "" {
		settings.Format = FormatText
	}

	limits := &settings.Limits
	defaultInt(&limits.ProlificDirectors, 10)
	defaultInt(&limits.ProlificDirectorsTop, 5)
	defaultInt(&limits.ProlificCast, 10)
	defaultInt(&limits.MinAppearances, 3)
	defaultInt(&limits.RatedCast, 20)
	defaultInt(&limits.RatedCastMinAppearances, 4)
	defaultInt(&limits.ProfitableDirectors, 10)
	defaultInt(&limits.TopBilled, 5)
	defaultInt(&limits.ActorDirectorPairs, 5)
}

func defaultInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate returns a message for every problem found in the settings.
func (settings *AnalyzerSettings) Validate() []string {
	var problems []string

	sources := []namedPath{
		{"sources.cast", settings.Sources.Cast},
		{"sources.rated", settings.Sources.Rated},
		{"sources.gross", settings.Sources.Gross},
	}
	for _, source := range sources {
		if strings.TrimSpace(source.path) == "" {
			problems = append(problems, "Path for '"+source.name+"' cannot be empty")
		}
	}

	if settings.HeaderRows < 0 {
		problems = append(problems, "header_rows cannot be negative")
	}

	for _, limit := range settings.Limits.named() {
		if limit.value < 0 {
			problems = append(problems, "Limit '"+limit.name+"' cannot be negative (got "+strconv.Itoa(limit.value)+")")
		}
	}

	if !IsSupportedFormat(settings.Format) {
		problems = append(problems, "Invalid format '"+settings.Format+"' (must be one of "+strings.Join(SupportedFormats, ", ")+")")
	}

	return problems
}

type namedPath struct {
	name string
	path string
}

type namedLimit struct {
	name  string
	value int
}

func (l LimitSettings) named() []namedLimit {
	return []namedLimit{
		{"prolific_directors", l.ProlificDirectors},
		{"prolific_directors_top", l.ProlificDirectorsTop},
		{"prolific_cast", l.ProlificCast},
		{"min_appearances", l.MinAppearances},
		{"rated_cast", l.RatedCast},
		{"rated_cast_min_appearances", l.RatedCastMinAppearances},
		{"profitable_directors", l.ProfitableDirectors},
		{"top_billed", l.TopBilled},
		{"actor_director_pairs", l.ActorDirectorPairs},
	}
}

// IsSupportedFormat reports whether format names a known report format.
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}

// Load reads settings from an optional YAML file at path, then applies
// MOVIES_* environment overrides, then fills defaults. An empty path skips
// the file.
func Load(path string) (AnalyzerSettings, error) {
	v := viper.New()
	setViperDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType(FormatYAML)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return AnalyzerSettings{}, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return AnalyzerSettings{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// MOVIES_LIMITS_TOP_BILLED -> limits.top_billed
	for _, envStr := range os.Environ() {
		key, value, found := strings.Cut(envStr, "=")
		if !found || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if propKey, ok := envKeys[strings.TrimPrefix(key, EnvPrefix)]; ok {
			v.Set(propKey, value)
		}
	}

	var settings AnalyzerSettings
	if err := v.Unmarshal(&settings); err != nil {
		return AnalyzerSettings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	settings.ApplyDefaults()
	return settings, nil
}

// envKeys maps environment suffixes to setting keys. Keys that contain an
// underscore themselves cannot be derived by replacing "_" with ".".
var envKeys = map[string]string{
	"SOURCES_CAST":                      "sources.cast",
	"SOURCES_RATED":                     "sources.rated",
	"SOURCES_GROSS":                     "sources.gross",
	"HEADER_ROWS":                       "header_rows",
	"FORMAT":                            "format",
	"LIMITS_PROLIFIC_DIRECTORS":         "limits.prolific_directors",
	"LIMITS_PROLIFIC_DIRECTORS_TOP":     "limits.prolific_directors_top",
	"LIMITS_PROLIFIC_CAST":              "limits.prolific_cast",
	"LIMITS_MIN_APPEARANCES":            "limits.min_appearances",
	"LIMITS_RATED_CAST":                 "limits.rated_cast",
	"LIMITS_RATED_CAST_MIN_APPEARANCES": "limits.rated_cast_min_appearances",
	"LIMITS_PROFITABLE_DIRECTORS":       "limits.profitable_directors",
	"LIMITS_TOP_BILLED":                 "limits.top_billed",
	"LIMITS_ACTOR_DIRECTOR_PAIRS":       "limits.actor_director_pairs",
}

func setViperDefaults(v *viper.Viper) {
	defaults := DefaultSettings()
	v.SetDefault("sources.cast", defaults.Sources.Cast)
	v.SetDefault("sources.rated", defaults.Sources.Rated)
	v.SetDefault("sources.gross", defaults.Sources.Gross)
	v.SetDefault("header_rows", defaults.HeaderRows)
	v.SetDefault("format", defaults.Format)
}
