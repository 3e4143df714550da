// SPDX-License-Identifier: MIT
// Package auction: side classification policies.
//
// Which vertices bid and which receive bids is an explicit policy injected into
// NewSolver. Vertex identity alone says nothing about sides, so no policy is
// applied by default.
package auction

import "reflect"

// Side tells which half of the market a vertex belongs to.
type Side uint8

const (
	// Object vertices receive bids and accrue price.
	Object Side = iota
	// Buyer vertices place bids.
	Buyer
)

// String implements fmt.Stringer.
func (s Side) String() string {
	if s == Buyer {
		return "buyer"
	}

	return "object"
}

// Classifier assigns every vertex identifier to a Side.
// It must be deterministic: the solver calls it once per vertex per run.
type Classifier[K comparable] func(id K) Side

// ByKind classifies by the dynamic type of the identifier: any integer kind
// (signed or unsigned) is a Buyer, everything else is an Object.
//
// This suits a Graph[any] built with int buyers and string objects. On a
// Graph[int] every vertex is a buyer and nothing can be assigned.
func ByKind[K comparable]() Classifier[K] {
	return func(id K) Side {
		switch reflect.ValueOf(any(id)).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return Buyer
		default:
			return Object
		}
	}
}

// BySet classifies the listed identifiers as buyers and everything else as objects.
func BySet[K comparable](buyers ...K) Classifier[K] {
	set := make(map[K]struct{}, len(buyers))
	for _, b := range buyers {
		set[b] = struct{}{}
	}

	return func(id K) Side {
		if _, ok := set[id]; ok {
			return Buyer
		}

		return Object
	}
}

// ByPredicate classifies id as a Buyer when isBuyer(id) is true.
// A nil predicate yields a nil Classifier, which NewSolver rejects.
func ByPredicate[K comparable](isBuyer func(id K) bool) Classifier[K] {
	if isBuyer == nil {
		return nil
	}

	return func(id K) Side {
		if isBuyer(id) {
			return Buyer
		}

		return Object
	}
}
