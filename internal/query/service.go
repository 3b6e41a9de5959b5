package query

import (
	"fmt"
	"sort"

	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/store"
)

// pairBillingSlots is how many billed cast members count towards director/actor pairs.
const pairBillingSlots = 4

// Service answers the analytical questions over a joined movie store.
// It never modifies the store.
// It fulfills the services.QueryEngine interface.
type Service struct {
	movies *store.MovieStore
}

// NewService creates a query Service over movies.
func NewService(movies *store.MovieStore) (*Service, error) {
	if movies == nil {
		return nil, fmt.Errorf("movie store cannot be nil")
	}
	return &Service{movies: movies}, nil
}

// Store returns the store being queried.
func (s *Service) Store() *store.MovieStore {
	return s.movies
}

// BothTopRatedAndGrossing returns the movies present in the cast, top rated
// and top grossing sources.
func (s *Service) BothTopRatedAndGrossing() *store.MovieStore {
	return s.movies.Filter(func(rec *model.MovieRecord) bool {
		return rec.InAllSources()
	})
}

// UniqueDirectors returns every director name once, sorted alphabetically.
func (s *Service) UniqueDirectors() []string {
	directors := make(map[string]struct{})
	for _, rec := range s.movies.Records() {
		if director, ok := rec.Director(); ok {
			directors[director] = struct{}{}
		}
	}
	return sortedKeys(directors)
}

// DirectorsOfMostMovies returns (movies directed, director) for the count
// most prolific directors.
func (s *Service) DirectorsOfMostMovies(count int) []model.NameCount {
	tally := make(map[string]int)
	for _, rec := range s.movies.Records() {
		if director, ok := rec.Director(); ok {
			tally[director]++
		}
	}
	return countsFrom(tally, byCountDescNameDesc, count)
}

// CastFilmography returns, alphabetically by name, the cast members billed in
// at least minAppearances movies along with those movies.
func (s *Service) CastFilmography(minAppearances int) []model.Filmography {
	actors := make(map[string][]model.MovieKey)
	for _, rec := range s.movies.Records() {
		for _, actor := range rec.Cast() {
			actors[actor] = append(actors[actor], rec.Key)
		}
	}

	filmography := make([]model.Filmography, 0, len(actors))
	for name, movies := range actors {
		if len(movies) >= minAppearances {
			filmography = append(filmography, model.Filmography{Name: name, Movies: movies})
		}
	}
	sort.Slice(filmography, byNameThenMovies(filmography))
	return filmography
}

// UniqueCastMembers returns every billed cast member once, sorted alphabetically.
func (s *Service) UniqueCastMembers() []string {
	filmography := s.CastFilmography(1)
	names := make([]string, 0, len(filmography))
	for _, f := range filmography {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// MostHighlyRatedCastMembers returns (average rating, name) for the count
// best rated cast members among those with at least minAppearances movies.
// Only movies carrying a rating are averaged; a cast member with none
// averages 0.
func (s *Service) MostHighlyRatedCastMembers(count, minAppearances int) []model.RatedName {
	filmography := s.CastFilmography(minAppearances)
	ratings := make([]model.RatedName, 0, len(filmography))
	for _, f := range filmography {
		ratings = append(ratings, model.RatedName{Average: s.averageRating(f.Movies), Name: f.Name})
	}
	sort.Slice(ratings, byAverageDescNameDesc(ratings))
	return truncate(ratings, count)
}

func (s *Service) averageRating(keys []model.MovieKey) float64 {
	var total float64
	var rated int
	for _, key := range keys {
		rec, ok := s.movies.Get(key)
		if !ok {
			continue
		}
		if rating, ok := rec.Rating(); ok {
			total += rating
			rated++
		}
	}
	if rated == 0 {
		return 0
	}
	return total / float64(rated)
}

// MostProfitableDirectors returns (total profit, director) for the count
// directors whose movies grossed the most. Each movie's profit is truncated
// to an integer before summing.
func (s *Service) MostProfitableDirectors(count int) []model.NameCount {
	tally := make(map[string]int)
	for _, rec := range s.movies.Records() {
		director, ok := rec.Director()
		if !ok {
			continue
		}
		if profit, ok := rec.Profit(); ok {
			tally[director] += int(profit)
		}
	}
	return countsFrom(tally, byCountDescNameDesc, count)
}

// MostMoviesPerDecades returns (movies, decade label) for every decade,
// most productive first.
func (s *Service) MostMoviesPerDecades() []model.NameCount {
	tally := make(map[string]int)
	for _, key := range s.movies.Order {
		tally[key.Decade()]++
	}
	return countsFrom(tally, byCountDescNameDesc, len(tally))
}

// MostTopBilled returns (times billed first, name) for the count cast
// members most often at the top of the bill.
func (s *Service) MostTopBilled(count int) []model.NameCount {
	tally := make(map[string]int)
	for _, rec := range s.movies.Records() {
		if billed := rec.TopBilled(1); len(billed) == 1 {
			tally[billed[0]]++
		}
	}
	return countsFrom(tally, byCountDescNameAsc, count)
}

// ActorDirectorPairs returns the count most frequent director/actor
// pairings. Only the first four billed cast members of each movie count.
func (s *Service) ActorDirectorPairs(count int) []model.PairCount {
	type pair struct{ director, actor string }
	tally := make(map[pair]int)
	for _, rec := range s.movies.Records() {
		director, ok := rec.Director()
		if !ok {
			continue
		}
		for _, actor := range rec.TopBilled(pairBillingSlots) {
			tally[pair{director: director, actor: actor}]++
		}
	}

	pairs := make([]model.PairCount, 0, len(tally))
	for p, n := range tally {
		pairs = append(pairs, model.PairCount{Count: n, Director: p.director, Actor: p.actor})
	}
	sort.Slice(pairs, byPairCountDescNamesAsc(pairs))
	return truncate(pairs, count)
}

// DirectorsWhoAct returns, alphabetically, the people who both directed and
// were billed in the cast of the stored movies.
func (s *Service) DirectorsWhoAct() []string {
	cast := make(map[string]struct{})
	for _, name := range s.UniqueCastMembers() {
		cast[name] = struct{}{}
	}
	both := make([]string, 0)
	for _, director := range s.UniqueDirectors() {
		if _, ok := cast[director]; ok {
			both = append(both, director)
		}
	}
	return both
}

// MostProlificCastMembers returns (movies, name) for the count cast members
// with the longest filmographies among those with at least minAppearances
// movies. Ties are alphabetical.
func (s *Service) MostProlificCastMembers(count, minAppearances int) []model.NameCount {
	filmography := s.CastFilmography(minAppearances)
	items := make([]model.NameCount, 0, len(filmography))
	for _, f := range filmography {
		items = append(items, model.NameCount{Count: len(f.Movies), Name: f.Name})
	}
	sort.Slice(items, byCountDescNameAsc(items))
	return truncate(items, count)
}
