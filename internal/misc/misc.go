package misc

import "golang.org/x/exp/constraints"

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// RandomBetween returns a uniformly distributed value in [lo, hi].
// lo must not exceed hi.
func RandomBetween[T constraints.Integer](src interface{ Intn(n int) int }, lo, hi T) T {
	return lo + T(src.Intn(int(hi-lo)+1))
}

func StringLimit(s string, n int) string {
	if n < 0 {
		return ""
	}
	if n <= 3 {
		return s[:Min(n, len(s))]
	}
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
