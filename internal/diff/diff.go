// Package diff implements the structural comparison of two parsed JSON
// documents. Every key reachable from either side is classified into
// exactly one of four buckets of dotted paths: added (right only),
// removed (left only), modified (present on both sides with unequal
// values) or same.
package diff

import (
	"strconv"

	"jsonlens/internal/models"
)

// Report classifies every field path visited during a comparison. The
// four buckets are pairwise disjoint; a path for a container only ever
// appears when the container stopped the recursion (absent on one side,
// or compared as a scalar against a non-container).
type Report struct {
	Added    []string
	Removed  []string
	Modified []string
	Same     []string
}

// Total returns the number of classified paths across all buckets.
func (r Report) Total() int {
	return len(r.Added) + len(r.Removed) + len(r.Modified) + len(r.Same)
}

// Changed reports whether the comparison found any difference.
func (r Report) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}

// merge folds a child report into r. Each recursive call owns its
// report; the caller folds it in rather than sharing an accumulator.
func (r *Report) merge(child Report) {
	r.Added = append(r.Added, child.Added...)
	r.Removed = append(r.Removed, child.Removed...)
	r.Modified = append(r.Modified, child.Modified...)
	r.Same = append(r.Same, child.Same...)
}

// Compare walks left and right and classifies every key in the union of
// their key sets. Arrays take part with their indices stringified, so a
// reordered or shifted array surfaces as per-index modifications rather
// than a move. Recursion happens only when both children are non-null
// containers; everything else is decided by exact value equality.
func Compare(left, right models.Value) Report {
	return compare(left, right, "")
}

func compare(left, right models.Value, prefix string) Report {
	var report Report
	for _, key := range unionKeys(left, right) {
		childPath := key
		if prefix != "" {
			childPath = prefix + "." + key
		}

		lc, inLeft := childByKey(left, key)
		rc, inRight := childByKey(right, key)

		switch {
		case !inLeft:
			report.Added = append(report.Added, childPath)
		case !inRight:
			report.Removed = append(report.Removed, childPath)
		case lc.IsContainer() && rc.IsContainer():
			report.merge(compare(lc, rc, childPath))
		case !lc.Equal(rc):
			report.Modified = append(report.Modified, childPath)
		default:
			report.Same = append(report.Same, childPath)
		}
	}
	return report
}

// unionKeys returns the union of both key sets: left's keys in document
// order, then right-only keys in document order. Non-containers (null
// included) contribute an empty key set, so a missing or scalar side is
// never dereferenced.
func unionKeys(left, right models.Value) []string {
	leftKeys := valueKeys(left)
	rightKeys := valueKeys(right)

	seen := make(map[string]struct{}, len(leftKeys))
	union := make([]string, 0, len(leftKeys)+len(rightKeys))
	for _, k := range leftKeys {
		seen[k] = struct{}{}
		union = append(union, k)
	}
	for _, k := range rightKeys {
		if _, ok := seen[k]; !ok {
			union = append(union, k)
		}
	}
	return union
}

func valueKeys(v models.Value) []string {
	switch v.Kind {
	case models.Object:
		return v.Keys()
	case models.Array:
		keys := make([]string, len(v.Items))
		for i := range v.Items {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	default:
		return nil
	}
}

func childByKey(v models.Value, key string) (models.Value, bool) {
	switch v.Kind {
	case models.Object:
		return v.Field(key)
	case models.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(v.Items) {
			return models.Value{}, false
		}
		return v.Items[i], true
	default:
		return models.Value{}, false
	}
}
