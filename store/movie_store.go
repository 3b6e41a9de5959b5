package store

import (
	"github.com/gcbaptista/go-movie-analyzer/model"
)

// MovieStore is the joined dataset: every movie key mapped to its accumulated
// record. Keys are remembered in first-insertion order so that queries which
// walk the store produce the same output on every run.
//
// A store is written only while sources are merged into it. Once Sealed is
// set, it is read-only.
type MovieStore struct {
	Movies map[model.MovieKey]*model.MovieRecord
	Order  []model.MovieKey
	Sealed bool
}

// NewMovieStore creates an empty store.
func NewMovieStore() *MovieStore {
	return &MovieStore{
		Movies: make(map[model.MovieKey]*model.MovieRecord),
		Order:  make([]model.MovieKey, 0),
	}
}

// Len returns the number of distinct movies.
func (ms *MovieStore) Len() int {
	return len(ms.Order)
}

// Get returns the record stored under key.
func (ms *MovieStore) Get(key model.MovieKey) (*model.MovieRecord, bool) {
	rec, ok := ms.Movies[key]
	return rec, ok
}

// Upsert returns the record for key, creating it when the key is new.
func (ms *MovieStore) Upsert(key model.MovieKey) *model.MovieRecord {
	if rec, ok := ms.Movies[key]; ok {
		return rec
	}
	rec := model.NewMovieRecord(key)
	ms.Movies[key] = rec
	ms.Order = append(ms.Order, key)
	return rec
}

// Records returns the records in insertion order.
func (ms *MovieStore) Records() []*model.MovieRecord {
	records := make([]*model.MovieRecord, 0, len(ms.Order))
	for _, key := range ms.Order {
		records = append(records, ms.Movies[key])
	}
	return records
}

// Keys returns a copy of the keys in insertion order.
func (ms *MovieStore) Keys() []model.MovieKey {
	keys := make([]model.MovieKey, len(ms.Order))
	copy(keys, ms.Order)
	return keys
}

// Filter returns a new sealed store holding the records for which keep
// returns true. Records are shared with the receiver, not copied.
func (ms *MovieStore) Filter(keep func(*model.MovieRecord) bool) *MovieStore {
	subset := NewMovieStore()
	for _, key := range ms.Order {
		rec := ms.Movies[key]
		if keep(rec) {
			subset.Movies[key] = rec
			subset.Order = append(subset.Order, key)
		}
	}
	subset.Sealed = true
	return subset
}
