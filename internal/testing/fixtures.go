// Package testing provides fixtures and helpers for testing the movie analyzer.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-movie-analyzer/internal/joiner"
	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/store"
)

// Header lines written above the fixture rows by WriteSources.
const (
	CastHeader  = "Rank\tTitle\tYear\tDirector\tCast 1\tCast 2\tCast 3\tCast 4\tCast 5"
	RatedHeader = "Rank\tTitle\tYear\tRating"
	GrossHeader = "Rank\tTitle\tYear\tGross"
)

// Fixture movies. Alpha and Delta are in all three lists, Bravo and Echo are
// only top rated, Charlie is only top grossing and Golf has no cast row.
var (
	Alpha   = model.MovieKey{Title: "Alpha", Year: "1994"}
	Bravo   = model.MovieKey{Title: "Bravo", Year: "1999"}
	Charlie = model.MovieKey{Title: "Charlie", Year: "2003"}
	Delta   = model.MovieKey{Title: "Delta", Year: "2010"}
	Echo    = model.MovieKey{Title: "Echo", Year: "2008"}
	Golf    = model.MovieKey{Title: "Golf", Year: "2015"}
)

// CastRows returns the fixture cast list rows.
func CastRows() [][]string {
	return [][]string{
		{"1", "Alpha", "1994", "DirA", "Ann", "Bob", "Cat", "Dan", "Eve"},
		{"2", "Bravo", "1999", "DirA", "Bob", "Ann", "Cat", "Fay", "Gus"},
		{"3", "Charlie", "2003", "DirB", "Ann", "Hal", "Bob", "Ivy", "Jon"},
		{"4", "Delta", "2010", "DirB", "Cat", "Ann", "Kim", "Bob", "Lou"},
		{"5", "Echo", "2008", "DirC", "DirA", "Bob", "Ann", "Max", "Ned"},
	}
}

// RatedRows returns the fixture top rated rows.
func RatedRows() [][]string {
	return [][]string{
		{"1", "Alpha", "1994", "8.5"},
		{"2", "Bravo", "1999", "9.0"},
		{"3", "Delta", "2010", "8.0"},
		{"4", "Echo", "2008", "7.0"},
	}
}

// GrossRows returns the fixture top grossing rows.
func GrossRows() [][]string {
	return [][]string{
		{"1", "Alpha", "1994", "300.5"},
		{"2", "Charlie", "2003", "250.9"},
		{"3", "Delta", "2010", "500"},
		{"4", "Golf", "2015", "120"},
	}
}

// SourceRows returns all fixture rows keyed by source.
func SourceRows() map[model.Source][][]string {
	return map[model.Source][][]string{
		model.SourceCast:     CastRows(),
		model.SourceTopRated: RatedRows(),
		model.SourceGrossing: GrossRows(),
	}
}

// JoinFixtures merges the fixture rows in source order and returns the sealed store.
func JoinFixtures(t *testing.T) *store.MovieStore {
	t.Helper()

	j, err := joiner.NewService(nil)
	require.NoError(t, err, "Failed to create joiner")

	rows := SourceRows()
	for _, source := range model.Sources {
		require.NoError(t, j.Merge(source, rows[source]), "Failed to merge %s rows", source)
	}
	return j.Seal()
}

// WriteTSV writes header (when not empty) and rows as a tab-separated file
// under dir and returns its path.
func WriteTSV(t *testing.T, dir, name, header string, rows [][]string) string {
	t.Helper()

	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600), "Failed to write %s", path)
	return path
}

// SourcePaths holds the locations of the three fixture files.
type SourcePaths struct {
	Cast  string
	Rated string
	Gross string
}

// WriteSources writes the fixture rows, each below a single header line, to
// a temporary directory removed when the test ends.
func WriteSources(t *testing.T) SourcePaths {
	t.Helper()

	dir := t.TempDir()
	return SourcePaths{
		Cast:  WriteTSV(t, dir, "imdb_movies_cast.txt", CastHeader, CastRows()),
		Rated: WriteTSV(t, dir, "imdb_movies_toprated.txt", RatedHeader, RatedRows()),
		Gross: WriteTSV(t, dir, "imdb_movies_gross.txt", GrossHeader, GrossRows()),
	}
}
