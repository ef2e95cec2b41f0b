// Package stats counts value kinds across a parsed JSON tree.
package stats

import (
	"jsonlens/internal/models"
)

// Stats holds per-kind node counts for one document. Every visited node
// counts exactly once; nothing is deduplicated.
type Stats struct {
	Objects  int
	Arrays   int
	Strings  int
	Numbers  int
	Booleans int
	Nulls    int
}

// Total returns the number of counted nodes.
func (s Stats) Total() int {
	return s.Objects + s.Arrays + s.Strings + s.Numbers + s.Booleans + s.Nulls
}

// Collect folds over v and returns its counts. A container contributes
// one to its own bucket and then folds over its children.
func Collect(v models.Value) Stats {
	var s Stats
	s.add(v)
	return s
}

func (s *Stats) add(v models.Value) {
	switch v.Kind {
	case models.Object:
		s.Objects++
		for _, m := range v.Members {
			s.add(m.Value)
		}
	case models.Array:
		s.Arrays++
		for _, item := range v.Items {
			s.add(item)
		}
	case models.String:
		s.Strings++
	case models.Number:
		s.Numbers++
	case models.Bool:
		s.Booleans++
	case models.Null:
		s.Nulls++
	}
}
