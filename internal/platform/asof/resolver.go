// Package asof resolves "latest as-of" facts from append-only history
// slices: for each distinct grouping key, the single fact with the
// maximum ordering value, optionally restricted to a period.
package asof

import "cmp"

// Latest groups facts by key and keeps, per key, the fact with the
// maximum order value. Keys with no facts are absent from the result.
//
// When two facts of one group share the maximum order value, the fact
// appearing later in the input slice wins. That makes the resolution a
// deterministic function of the input; callers that need a semantic
// tie-break sort the input by their secondary key first.
func Latest[F any, K comparable, O cmp.Ordered](facts []F, key func(F) K, order func(F) O) map[K]F {
	out := make(map[K]F)
	best := make(map[K]O, len(out))
	for _, f := range facts {
		k := key(f)
		o := order(f)
		if current, ok := best[k]; ok && o < current {
			continue
		}
		best[k] = o
		out[k] = f
	}
	return out
}

// LatestWhere is Latest restricted to facts for which match is true.
// A group whose facts all fail match is absent from the result, which
// callers must read as "no data", not as a zero value.
func LatestWhere[F any, K comparable, O cmp.Ordered](facts []F, key func(F) K, order func(F) O, match func(F) bool) map[K]F {
	out := make(map[K]F)
	best := make(map[K]O)
	for _, f := range facts {
		if !match(f) {
			continue
		}
		k := key(f)
		o := order(f)
		if current, ok := best[k]; ok && o < current {
			continue
		}
		best[k] = o
		out[k] = f
	}
	return out
}
