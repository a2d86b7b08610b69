// Package query holds the read-side engine: predicate filtering, pagination,
// catalog search, order listing, daily trends and revenue ranking. Every
// function here is pure over the slices it is given and never modifies them,
// so callers may run queries concurrently against one shared snapshot.
package query

import (
	"math"
	"strings"
)

// Predicate reports whether a record passes one constraint.
type Predicate[T any] func(T) bool

// Filter returns the items matching every predicate, in input order. A nil
// predicate stands for an absent constraint and matches everything.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			active = append(active, p)
		}
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, active) {
			matched = append(matched, item)
		}
	}
	return matched
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

// roundCents rounds half away from zero to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
