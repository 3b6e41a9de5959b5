package model

import (
	"time"

	"github.com/google/uuid"
)

// NameCount pairs a name (director, actor, decade label) with a count or total.
type NameCount struct {
	Count int    `json:"count" yaml:"count"`
	Name  string `json:"name" yaml:"name"`
}

// RatedName pairs a cast member with their average rating.
type RatedName struct {
	Average float64 `json:"average" yaml:"average"`
	Name    string  `json:"name" yaml:"name"`
}

// Filmography lists the movies a cast member appeared in.
type Filmography struct {
	Name   string     `json:"name" yaml:"name"`
	Movies []MovieKey `json:"movies" yaml:"movies"`
}

// PairCount counts how often an actor appeared in a director's movies.
type PairCount struct {
	Count    int    `json:"count" yaml:"count"`
	Director string `json:"director" yaml:"director"`
	Actor    string `json:"actor" yaml:"actor"`
}

// Scope names the record set a report section was computed over.
type Scope string

const (
	ScopeAllMovies Scope = "all"       // movies that are top rated or top grossing
	ScopeTopMovies Scope = "all_three" // movies that are both top rated and top grossing
)

// Section is one answered question of a report.
// Exactly one of the result fields is set.
type Section struct {
	Name         string        `json:"name" yaml:"name"`
	Question     string        `json:"question" yaml:"question"`
	Scope        Scope         `json:"scope" yaml:"scope"`
	Movies       []MovieKey    `json:"movies,omitempty" yaml:"movies,omitempty"`
	Names        []string      `json:"names,omitempty" yaml:"names,omitempty"`
	Counts       []NameCount   `json:"counts,omitempty" yaml:"counts,omitempty"`
	Ratings      []RatedName   `json:"ratings,omitempty" yaml:"ratings,omitempty"`
	Filmography  []Filmography `json:"filmography,omitempty" yaml:"filmography,omitempty"`
	Pairs        []PairCount   `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	ResultLength int           `json:"result_length" yaml:"result_length"`
}

// Report is the outcome of one analysis run.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	MovieCount  int       `json:"movie_count" yaml:"movie_count"`
	TopCount    int       `json:"top_movie_count" yaml:"top_movie_count"`
	Sections    []Section `json:"sections" yaml:"sections"`
}

// NewReport creates an empty report with a fresh run ID.
func NewReport() *Report {
	return &Report{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now(),
		Sections:    make([]Section, 0),
	}
}

// Len returns the number of results in the section.
func (s Section) Len() int {
	switch {
	case s.Movies != nil:
		return len(s.Movies)
	case s.Names != nil:
		return len(s.Names)
	case s.Counts != nil:
		return len(s.Counts)
	case s.Ratings != nil:
		return len(s.Ratings)
	case s.Filmography != nil:
		return len(s.Filmography)
	case s.Pairs != nil:
		return len(s.Pairs)
	}
	return 0
}

// AddSection appends s, recording its result length.
func (r *Report) AddSection(s Section) {
	s.ResultLength = s.Len()
	r.Sections = append(r.Sections, s)
}

// Section returns the section with the given name.
func (r *Report) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}
