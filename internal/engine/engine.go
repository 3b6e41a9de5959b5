package engine

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gcbaptista/go-movie-analyzer/config"
	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
	"github.com/gcbaptista/go-movie-analyzer/internal/joiner"
	"github.com/gcbaptista/go-movie-analyzer/internal/loader"
	"github.com/gcbaptista/go-movie-analyzer/internal/query"
	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/services"
	"github.com/gcbaptista/go-movie-analyzer/store"
)

// ErrNotLoaded is returned when questions are asked before the sources are joined.
var ErrNotLoaded = errors.New("movie data has not been loaded")

// Engine joins the three movie sources once per run and answers questions
// over the result.
type Engine struct {
	settings config.AnalyzerSettings
	source   services.RowSource
	movies   *store.MovieStore
	queries  *query.Service
	top      *query.Service // over movies present in all three sources
}

// NewEngine creates an engine for settings. When source is nil the sources
// are read as tab-separated files.
func NewEngine(settings config.AnalyzerSettings, source services.RowSource) (*Engine, error) {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return nil, internalErrors.NewValidationError("", strings.Join(problems, "; "))
	}
	if source == nil {
		source = loader.NewTSVSource(settings.HeaderRows)
	}
	return &Engine{
		settings: settings,
		source:   source,
	}, nil
}

// Settings returns the settings the engine runs with.
func (e *Engine) Settings() config.AnalyzerSettings {
	return e.settings
}

// Load reads the cast, top rated and top grossing sources, in that order,
// and joins them.
func (e *Engine) Load() error {
	paths := map[model.Source]string{
		model.SourceCast:     e.settings.Sources.Cast,
		model.SourceTopRated: e.settings.Sources.Rated,
		model.SourceGrossing: e.settings.Sources.Gross,
	}

	rows := make(map[model.Source][][]string, len(model.Sources))
	for _, source := range model.Sources {
		path := paths[source]
		log.Printf("Loading %s movies from %s", source, path)
		sourceRows, err := e.source.ReadRows(path)
		if err != nil {
			return fmt.Errorf("failed to load %s movies: %w", source, err)
		}
		log.Printf("Read %d %s rows from %s", len(sourceRows), source, path)
		rows[source] = sourceRows
	}
	return e.LoadRows(rows)
}

// LoadRows joins already tokenized rows. Sources are merged in the fixed
// order cast, top rated, top grossing regardless of map iteration order;
// missing sources are treated as empty.
func (e *Engine) LoadRows(rows map[model.Source][][]string) error {
	joinService, err := joiner.NewService(store.NewMovieStore())
	if err != nil {
		return fmt.Errorf("failed to create joiner: %w", err)
	}
	var j services.Joiner = joinService
	for _, source := range model.Sources {
		if err := j.Merge(source, rows[source]); err != nil {
			return fmt.Errorf("failed to join %s movies: %w", source, err)
		}
	}

	movies := j.Seal()
	queries, err := query.NewService(movies)
	if err != nil {
		return fmt.Errorf("failed to create query service: %w", err)
	}
	top, err := query.NewService(queries.BothTopRatedAndGrossing())
	if err != nil {
		return fmt.Errorf("failed to create query service for top movies: %w", err)
	}

	e.movies = movies
	e.queries = queries
	e.top = top
	log.Printf("Joined %d movies, %d of them in all three sources", movies.Len(), top.Store().Len())
	return nil
}

// Movies returns the joined store, or nil before Load.
func (e *Engine) Movies() *store.MovieStore {
	return e.movies
}

// Queries returns the query service for the given scope.
func (e *Engine) Queries(scope model.Scope) (services.QueryEngine, error) {
	if e.queries == nil {
		return nil, ErrNotLoaded
	}
	switch scope {
	case model.ScopeAllMovies, "":
		return e.queries, nil
	case model.ScopeTopMovies:
		return e.top, nil
	default:
		return nil, internalErrors.NewValidationError("scope", fmt.Sprintf("unknown scope '%s'", scope))
	}
}
