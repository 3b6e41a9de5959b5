package engine

import (
	"context"
	"fmt"
	"log"
	"sort"

	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
	"github.com/gcbaptista/go-movie-analyzer/internal/jobs"
	"github.com/gcbaptista/go-movie-analyzer/internal/typoutil"
	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/services"
)

// Query names accepted by Ask.
const (
	QueryBothTop             = "both-top"
	QueryDirectors           = "directors"
	QueryProlificDirectors   = "prolific-directors"
	QueryFilmography         = "filmography"
	QueryProlificCast        = "prolific-cast"
	QueryCast                = "cast"
	QueryDirectorsWhoAct     = "directors-who-act"
	QueryRatedCast           = "rated-cast"
	QueryProfitableDirectors = "profitable-directors"
	QueryDecades             = "decades"
	QueryTopBilled           = "top-billed"
	QueryActorDirectorPairs  = "actor-director-pairs"
)

// maxSuggestionDistance bounds the edits between an unknown query name and
// the names offered in its place.
const maxSuggestionDistance = 2

// Params carries the two integer knobs a query may take.
type Params struct {
	Count          int
	MinAppearances int
}

type answerFunc func(q services.QueryEngine, p Params) model.Section

var answers = map[string]answerFunc{
	QueryBothTop: func(q services.QueryEngine, _ Params) model.Section {
		return model.Section{Movies: q.BothTopRatedAndGrossing().Keys()}
	},
	QueryDirectors: func(q services.QueryEngine, _ Params) model.Section {
		return model.Section{Names: q.UniqueDirectors()}
	},
	QueryProlificDirectors: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Counts: q.DirectorsOfMostMovies(p.Count)}
	},
	QueryFilmography: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Filmography: q.CastFilmography(p.MinAppearances)}
	},
	QueryProlificCast: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Counts: q.MostProlificCastMembers(p.Count, p.MinAppearances)}
	},
	QueryCast: func(q services.QueryEngine, _ Params) model.Section {
		return model.Section{Names: q.UniqueCastMembers()}
	},
	QueryDirectorsWhoAct: func(q services.QueryEngine, _ Params) model.Section {
		return model.Section{Names: q.DirectorsWhoAct()}
	},
	QueryRatedCast: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Ratings: q.MostHighlyRatedCastMembers(p.Count, p.MinAppearances)}
	},
	QueryProfitableDirectors: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Counts: q.MostProfitableDirectors(p.Count)}
	},
	QueryDecades: func(q services.QueryEngine, _ Params) model.Section {
		return model.Section{Counts: q.MostMoviesPerDecades()}
	},
	QueryTopBilled: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Counts: q.MostTopBilled(p.Count)}
	},
	QueryActorDirectorPairs: func(q services.QueryEngine, p Params) model.Section {
		return model.Section{Pairs: q.ActorDirectorPairs(p.Count)}
	},
}

// QueryNames lists the names accepted by Ask, sorted.
func QueryNames() []string {
	names := make([]string, 0, len(answers))
	for name := range answers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ask runs a single named query over scope.
func (e *Engine) Ask(name string, scope model.Scope, params Params) (model.Section, error) {
	answer, ok := answers[name]
	if !ok {
		return model.Section{}, internalErrors.NewUnknownQueryError(name, typoutil.Suggest(name, QueryNames(), maxSuggestionDistance)...)
	}
	q, err := e.Queries(scope)
	if err != nil {
		return model.Section{}, err
	}
	if scope == "" {
		scope = model.ScopeAllMovies
	}

	section := answer(q, params)
	section.Name = name
	section.Scope = scope
	section.ResultLength = section.Len()
	return section, nil
}

type question struct {
	name   string
	query  string
	scope  model.Scope
	text   string
	params Params
}

// questions is the fixed question set answered by Run, in report order.
func (e *Engine) questions() []question {
	limits := e.settings.Limits
	return []question{
		{"top-movies", QueryBothTop, model.ScopeAllMovies,
			"Which movies are both top rated and top grossing?", Params{}},
		{"directors", QueryDirectors, model.ScopeAllMovies,
			"Who directed the movies that are either top rated or top grossing?", Params{}},
		{"directors-top", QueryDirectors, model.ScopeTopMovies,
			"Who directed the movies that are both top rated and top grossing?", Params{}},
		{"prolific-directors", QueryProlificDirectors, model.ScopeAllMovies,
			"Who directed the most movies that are either top rated or top grossing?", Params{Count: limits.ProlificDirectors}},
		{"prolific-directors-top", QueryProlificDirectors, model.ScopeTopMovies,
			"Who directed the most movies that are both top rated and top grossing?", Params{Count: limits.ProlificDirectorsTop}},
		{"filmography", QueryFilmography, model.ScopeAllMovies,
			"Who acted in several movies that are either top rated or top grossing?", Params{MinAppearances: limits.MinAppearances}},
		{"prolific-cast", QueryProlificCast, model.ScopeAllMovies,
			"Who acted in the most movies that are either top rated or top grossing?", Params{Count: limits.ProlificCast, MinAppearances: limits.MinAppearances}},
		{"directors-who-act", QueryDirectorsWhoAct, model.ScopeAllMovies,
			"Who directed and also starred in any movies that are either top rated or top grossing?", Params{}},
		{"rated-cast", QueryRatedCast, model.ScopeAllMovies,
			"Who acted in the movies with the highest average rating?", Params{Count: limits.RatedCast, MinAppearances: 1}},
		{"rated-cast-regulars", QueryRatedCast, model.ScopeAllMovies,
			"Among frequent cast members, whose movies have the highest average rating?", Params{Count: 1, MinAppearances: limits.RatedCastMinAppearances}},
		{"profitable-directors", QueryProfitableDirectors, model.ScopeAllMovies,
			"Who directed the highest grossing movies?", Params{Count: limits.ProfitableDirectors}},
		{"decades", QueryDecades, model.ScopeAllMovies,
			"Which decades produced movies that are either top rated or top grossing?", Params{}},
		{"decades-top", QueryDecades, model.ScopeTopMovies,
			"Which decades produced movies that are both top rated and top grossing?", Params{}},
		{"top-billed", QueryTopBilled, model.ScopeAllMovies,
			"Who was billed first most often?", Params{Count: limits.TopBilled}},
		{"actor-director-pairs", QueryActorDirectorPairs, model.ScopeAllMovies,
			"Which directors and actors worked together most often?", Params{Count: limits.ActorDirectorPairs}},
	}
}

// Run answers the full question set, in order, and returns the report.
func (e *Engine) Run(ctx context.Context) (*model.Report, error) {
	if e.queries == nil {
		return nil, ErrNotLoaded
	}

	questions := e.questions()
	sections := make([]model.Section, len(questions))
	tasks := make([]jobs.Task, len(questions))
	for i, qn := range questions {
		tasks[i] = jobs.Task{
			Name: qn.name,
			Run: func(ctx context.Context) error {
				section, err := e.Ask(qn.query, qn.scope, qn.params)
				if err != nil {
					return err
				}
				section.Name = qn.name
				section.Question = qn.text
				sections[i] = section
				return nil
			},
		}
	}

	runner := jobs.NewRunner()
	if err := runner.RunAll(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to answer questions: %w", err)
	}

	report := model.NewReport()
	report.MovieCount = e.movies.Len()
	report.TopCount = e.top.Store().Len()
	for _, section := range sections {
		report.AddSection(section)
	}

	metrics := runner.GetMetrics()
	log.Printf("Report %s answered %d questions over %d movies in %v (slowest: %s)",
		report.RunID, len(report.Sections), report.MovieCount, metrics.TotalExecutionTime, metrics.SlowestTask)
	return report, nil
}
