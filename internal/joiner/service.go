package joiner

import (
	"fmt"
	"strings"

	internalErrors "github.com/gcbaptista/go-movie-analyzer/internal/errors"
	"github.com/gcbaptista/go-movie-analyzer/model"
	"github.com/gcbaptista/go-movie-analyzer/store"
)

const (
	titleField = 1
	yearField  = 2
	minFields  = yearField + 1
	// a cast row is rank, title, year, director and five billed cast members
	minCastFields = model.CastFieldCount + 2
)

// Service merges per-source rows into a single MovieStore.
// It fulfills the services.Joiner interface.
type Service struct {
	movieStore *store.MovieStore
}

// NewService creates a new joining Service writing into movieStore.
// A nil store is replaced by an empty one.
func NewService(movieStore *store.MovieStore) (*Service, error) {
	if movieStore == nil {
		movieStore = store.NewMovieStore()
	}
	if movieStore.Sealed {
		return nil, fmt.Errorf("cannot join into store: %w", internalErrors.ErrStoreSealed)
	}
	if movieStore.Movies == nil {
		movieStore.Movies = make(map[model.MovieKey]*model.MovieRecord)
	}
	return &Service{movieStore: movieStore}, nil
}

// Merge appends the non-key fields of every row to the record for that row's
// (title, year) key. The value kept is the leading field followed by every
// field after the year. Merging cast, top rated and top grossing in that
// order gives the record layout documented on model.MovieRecord.
//
// Rows are validated before anything is written, so a malformed row leaves
// the store untouched.
func (s *Service) Merge(source model.Source, rows [][]string) error {
	if s.movieStore.Sealed {
		return fmt.Errorf("cannot merge %s rows: %w", source, internalErrors.ErrStoreSealed)
	}

	want := minFields
	if source == model.SourceCast {
		want = minCastFields
	}
	for i, row := range rows {
		if len(row) < want {
			return internalErrors.NewMalformedRowError(string(source), i, len(row), want)
		}
	}

	for _, row := range rows {
		key := model.MovieKey{
			Title: strings.TrimSpace(row[titleField]),
			Year:  strings.TrimSpace(row[yearField]),
		}
		value := make([]string, 0, len(row)-2)
		value = append(value, row[:titleField]...)
		value = append(value, row[yearField+1:]...)

		s.movieStore.Upsert(key).Append(source, value)
	}
	return nil
}

// Seal marks the store read-only and returns it for querying.
func (s *Service) Seal() *store.MovieStore {
	s.movieStore.Sealed = true
	return s.movieStore
}

// Store returns the underlying store without sealing it.
func (s *Service) Store() *store.MovieStore {
	return s.movieStore
}
