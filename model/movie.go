package model

import (
	"strconv"
)

// Field positions inside the cast contribution of a MovieRecord.
const (
	CastRankField     = 0
	DirectorField     = 1
	FirstBilledField  = 2
	CastSlots         = 5
	CastFieldCount    = FirstBilledField + CastSlots // rank, director, five billed cast members
	ListFieldCount    = 2                            // rank plus rating or profit
	listValueField    = 1
	ratingUpperBound  = 10.0
	profitLowerBound  = 100.0
	decadeSuffix      = "0s"
	decadePrefixChars = 3
)

// Source identifies which input dataset contributed fields to a record.
type Source string

const (
	SourceCast     Source = "cast"
	SourceTopRated Source = "top_rated"
	SourceGrossing Source = "top_grossing"
)

// Sources lists the datasets in the order they must be merged.
var Sources = []Source{SourceCast, SourceTopRated, SourceGrossing}

// MovieKey is the composite identity of a movie across all sources.
type MovieKey struct {
	Title string `json:"title" yaml:"title"`
	Year  string `json:"year" yaml:"year"`
}

// Less orders keys by title, then year.
func (k MovieKey) Less(other MovieKey) bool {
	if k.Title != other.Title {
		return k.Title < other.Title
	}
	return k.Year < other.Year
}

// Decade returns the decade label for the key's year, e.g. "1995" -> "1990s".
func (k MovieKey) Decade() string {
	prefix := k.Year
	if len(prefix) > decadePrefixChars {
		prefix = prefix[:decadePrefixChars]
	}
	return prefix + decadeSuffix
}

func (k MovieKey) String() string {
	return "(" + k.Title + ", " + k.Year + ")"
}

// Contribution is the slice of non-key fields one source added to a record.
type Contribution struct {
	Source Source   `json:"source"`
	Fields []string `json:"fields"`
}

// MovieRecord accumulates the fields every source contributed for one movie.
// Fields keeps the flat concatenation in merge order (cast, top rated, top
// grossing); Contributions keeps the same data tagged by source so callers
// never have to infer meaning from the record length.
type MovieRecord struct {
	Key           MovieKey       `json:"key"`
	Contributions []Contribution `json:"contributions"`
	fields        []string
}

// NewMovieRecord creates an empty record for key.
func NewMovieRecord(key MovieKey) *MovieRecord {
	return &MovieRecord{Key: key}
}

// Append adds a source's fields to the end of the record.
func (r *MovieRecord) Append(source Source, fields []string) {
	copied := make([]string, len(fields))
	copy(copied, fields)
	r.Contributions = append(r.Contributions, Contribution{Source: source, Fields: copied})
	r.fields = append(r.fields, copied...)
}

// Fields returns the flat accumulated field list.
func (r *MovieRecord) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len is the number of accumulated fields.
func (r *MovieRecord) Len() int {
	return len(r.fields)
}

// Contribution returns the first contribution made by source.
func (r *MovieRecord) Contribution(source Source) (Contribution, bool) {
	for _, c := range r.Contributions {
		if c.Source == source {
			return c, true
		}
	}
	return Contribution{}, false
}

// HasSource reports whether source contributed to this record.
func (r *MovieRecord) HasSource(source Source) bool {
	_, ok := r.Contribution(source)
	return ok
}

// InAllSources reports whether the movie is in the cast, top rated and top grossing lists.
func (r *MovieRecord) InAllSources() bool {
	for _, s := range Sources {
		if !r.HasSource(s) {
			return false
		}
	}
	return true
}

// Director returns the director name from the cast contribution.
func (r *MovieRecord) Director() (string, bool) {
	c, ok := r.Contribution(SourceCast)
	if !ok || len(c.Fields) <= DirectorField {
		return "", false
	}
	return c.Fields[DirectorField], true
}

// Cast returns the billed cast members in billing order (at most five).
func (r *MovieRecord) Cast() []string {
	return r.TopBilled(CastSlots)
}

// TopBilled returns the first n billed cast members.
func (r *MovieRecord) TopBilled(n int) []string {
	c, ok := r.Contribution(SourceCast)
	if !ok || n <= 0 || len(c.Fields) <= FirstBilledField {
		return nil
	}
	end := FirstBilledField + n
	if end > CastFieldCount {
		end = CastFieldCount
	}
	if end > len(c.Fields) {
		end = len(c.Fields)
	}
	return c.Fields[FirstBilledField:end]
}

// Rating returns the movie's rating from the top rated list. Values that do
// not classify as a rating are not reported.
func (r *MovieRecord) Rating() (float64, bool) {
	v, ok := r.listValue(SourceTopRated)
	if !ok || ClassifyValue(v) != ValueRating {
		return 0, false
	}
	return v, true
}

// Profit returns the movie's gross from the top grossing list. Values that do
// not classify as a profit are not reported.
func (r *MovieRecord) Profit() (float64, bool) {
	v, ok := r.listValue(SourceGrossing)
	if !ok || ClassifyValue(v) != ValueProfit {
		return 0, false
	}
	return v, true
}

func (r *MovieRecord) listValue(source Source) (float64, bool) {
	c, ok := r.Contribution(source)
	if !ok || len(c.Fields) <= listValueField {
		return 0, false
	}
	v, err := strconv.ParseFloat(c.Fields[listValueField], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ValueKind is the meaning assigned to a numeric list value by magnitude.
type ValueKind int

const (
	ValueUnknown ValueKind = iota
	ValueRating
	ValueProfit
)

// ClassifyValue applies the dataset convention: ratings are below 10 and
// profits are above 100. Anything in between is unknown.
func ClassifyValue(v float64) ValueKind {
	switch {
	case v < ratingUpperBound:
		return ValueRating
	case v > profitLowerBound:
		return ValueProfit
	default:
		return ValueUnknown
	}
}
