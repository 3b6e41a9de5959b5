package services

import (
	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/store"
)

// RowSource supplies tokenized rows for a dataset. Header rows are already
// removed; each row is the list of fields of one line.
type RowSource interface {
	ReadRows(path string) ([][]string, error)
}

// Joiner defines operations for merging source rows into the joined store
type Joiner interface {
	Merge(source model.Source, rows [][]string) error
	Seal() *store.MovieStore
}

// QueryEngine defines the read-only questions answered over a joined store.
// Rankings return at most count entries; count <= 0 yields an empty result.
type QueryEngine interface {
	BothTopRatedAndGrossing() *store.MovieStore
	UniqueDirectors() []string
	DirectorsOfMostMovies(count int) []model.NameCount
	CastFilmography(minAppearances int) []model.Filmography
	UniqueCastMembers() []string
	MostHighlyRatedCastMembers(count, minAppearances int) []model.RatedName
	MostProfitableDirectors(count int) []model.NameCount
	MostMoviesPerDecades() []model.NameCount
	MostTopBilled(count int) []model.NameCount
	ActorDirectorPairs(count int) []model.PairCount
	DirectorsWhoAct() []string
	MostProlificCastMembers(count, minAppearances int) []model.NameCount
}
