package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func castContribution() []string {
	return []string{"1", "Director", "A1", "A2", "A3", "A4", "A5"}
}

func TestMovieRecord_Lengths(t *testing.T) {
	key := MovieKey{Title: "Movie", Year: "1999"}

	castOnly := NewMovieRecord(key)
	castOnly.Append(SourceCast, castContribution())
	assert.Equal(t, CastFieldCount, castOnly.Len())

	rated := NewMovieRecord(key)
	rated.Append(SourceCast, castContribution())
	rated.Append(SourceTopRated, []string{"4", "8.7"})
	assert.Equal(t, CastFieldCount+ListFieldCount, rated.Len())

	all := NewMovieRecord(key)
	all.Append(SourceCast, castContribution())
	all.Append(SourceTopRated, []string{"4", "8.7"})
	all.Append(SourceGrossing, []string{"12", "450.2"})
	assert.Equal(t, CastFieldCount+2*ListFieldCount, all.Len())
	assert.True(t, all.InAllSources())
	assert.False(t, rated.InAllSources())

	fields := all.Fields()
	assert.Equal(t, []string{"1", "Director", "A1", "A2", "A3", "A4", "A5", "4", "8.7", "12", "450.2"}, fields)

	// Fields hands out a copy.
	fields[0] = "changed"
	assert.Equal(t, "1", all.Fields()[0])
}

func TestMovieRecord_AppendCopiesInput(t *testing.T) {
	input := []string{"4", "8.7"}
	rec := NewMovieRecord(MovieKey{Title: "Movie", Year: "1999"})
	rec.Append(SourceTopRated, input)
	input[1] = "1.0"

	rating, ok := rec.Rating()
	require.True(t, ok)
	assert.Equal(t, 8.7, rating)
}

func TestMovieRecord_CastAccessors(t *testing.T) {
	rec := NewMovieRecord(MovieKey{Title: "Movie", Year: "1999"})

	_, ok := rec.Director()
	assert.False(t, ok, "record without a cast contribution has no director")
	assert.Nil(t, rec.Cast())

	rec.Append(SourceGrossing, []string{"1", "300"})
	rec.Append(SourceCast, castContribution())

	director, ok := rec.Director()
	require.True(t, ok)
	assert.Equal(t, "Director", director)
	assert.Equal(t, []string{"A1", "A2", "A3", "A4", "A5"}, rec.Cast())
	assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, rec.TopBilled(4))
	assert.Equal(t, []string{"A1"}, rec.TopBilled(1))
	assert.Nil(t, rec.TopBilled(0))
	assert.Len(t, rec.TopBilled(10), CastSlots)
}

func TestMovieRecord_RatingAndProfit(t *testing.T) {
	tests := []struct {
		name       string
		source     Source
		value      string
		wantRating bool
		wantProfit bool
	}{
		{"rating", SourceTopRated, "8.9", true, false},
		{"profit", SourceGrossing, "936.7", false, true},
		{"middle value is neither", SourceTopRated, "50", false, false},
		{"ten is not a rating", SourceTopRated, "10", false, false},
		{"hundred is not a profit", SourceGrossing, "100", false, false},
		{"not a number", SourceGrossing, "n/a", false, false},
		{"small gross is not a profit", SourceGrossing, "9.5", false, false},
		{"large rating is not a rating", SourceTopRated, "150", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewMovieRecord(MovieKey{Title: "Movie", Year: "1999"})
			rec.Append(tt.source, []string{"1", tt.value})

			_, gotRating := rec.Rating()
			_, gotProfit := rec.Profit()
			if gotRating != tt.wantRating {
				t.Errorf("Rating() ok = %v, want %v", gotRating, tt.wantRating)
			}
			if gotProfit != tt.wantProfit {
				t.Errorf("Profit() ok = %v, want %v", gotProfit, tt.wantProfit)
			}
		})
	}
}

func TestClassifyValue(t *testing.T) {
	assert.Equal(t, ValueRating, ClassifyValue(9.99))
	assert.Equal(t, ValueUnknown, ClassifyValue(10))
	assert.Equal(t, ValueUnknown, ClassifyValue(50))
	assert.Equal(t, ValueUnknown, ClassifyValue(100))
	assert.Equal(t, ValueProfit, ClassifyValue(100.01))
}

func TestMovieKey(t *testing.T) {
	key := MovieKey{Title: "Heat", Year: "1995"}
	assert.Equal(t, "1990s", key.Decade())
	assert.Equal(t, "(Heat, 1995)", key.String())
	assert.Equal(t, "20s", MovieKey{Title: "Short", Year: "2"}.Decade())

	assert.True(t, key.Less(MovieKey{Title: "Heat", Year: "1996"}))
	assert.True(t, key.Less(MovieKey{Title: "Igby", Year: "1900"}))
	assert.False(t, key.Less(key))
}

func TestReport_AddSection(t *testing.T) {
	report := NewReport()
	require.NotEmpty(t, report.RunID)

	report.AddSection(Section{Name: "names", Names: []string{"a", "b"}})
	report.AddSection(Section{Name: "empty", Counts: []NameCount{}})

	s, ok := report.Section("names")
	require.True(t, ok)
	assert.Equal(t, 2, s.ResultLength)

	s, ok = report.Section("empty")
	require.True(t, ok)
	assert.Equal(t, 0, s.ResultLength)

	_, ok = report.Section("missing")
	assert.False(t, ok)

	assert.NotEqual(t, report.RunID, NewReport().RunID)
}
