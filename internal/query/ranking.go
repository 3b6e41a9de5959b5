package query

import (
	"sort"

	"github.com/gcbaptista/go-movie-analyzer/model"
)

// Ranked results use one of these comparators. Equal counts break on name
// descending for directors, profits, decades and average ratings, and on name
// ascending for top-billed and prolific cast members. Director/actor pairs
// break on director, then actor, both ascending.

func byCountDescNameDesc(items []model.NameCount) func(i, j int) bool {
	return func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name > items[j].Name
	}
}

func byCountDescNameAsc(items []model.NameCount) func(i, j int) bool {
	return func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	}
}

func byAverageDescNameDesc(items []model.RatedName) func(i, j int) bool {
	return func(i, j int) bool {
		if items[i].Average != items[j].Average {
			return items[i].Average > items[j].Average
		}
		return items[i].Name > items[j].Name
	}
}

func byPairCountDescNamesAsc(items []model.PairCount) func(i, j int) bool {
	return func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		if items[i].Director != items[j].Director {
			return items[i].Director < items[j].Director
		}
		return items[i].Actor < items[j].Actor
	}
}

// byNameThenMovies orders filmographies alphabetically by name, falling back
// to the movie lists compared element by element.
func byNameThenMovies(items []model.Filmography) func(i, j int) bool {
	return func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		a, b := items[i].Movies, items[j].Movies
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k].Less(b[k])
			}
		}
		return len(a) < len(b)
	}
}

// countsFrom converts a tally into a ranked, truncated list.
func countsFrom(tally map[string]int, less func([]model.NameCount) func(i, j int) bool, limit int) []model.NameCount {
	items := make([]model.NameCount, 0, len(tally))
	for name, count := range tally {
		items = append(items, model.NameCount{Count: count, Name: name})
	}
	sort.Slice(items, less(items))
	return truncate(items, limit)
}

// truncate keeps the first limit items. A non-positive limit keeps none.
func truncate[T any](items []T, limit int) []T {
	if limit <= 0 {
		return items[:0]
	}
	if limit < len(items) {
		return items[:limit]
	}
	return items
}

func sortedKeys(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
