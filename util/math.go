package util

import "golang.org/x/exp/constraints"

func Max[T constraints.Ordered](first T, rest ...T) T {
	for _, v := range rest {
		if v > first {
			first = v
		}
	}
	return first
}

func Min[T constraints.Ordered](first T, rest ...T) T {
	for _, v := range rest {
		if v < first {
			first = v
		}
	}
	return first
}

// Clamp limits v to [low, high]. The result is undefined when low > high.
func Clamp[T constraints.Ordered](v, low, high T) T {
	switch {
	case v < low:
		return low
	case v > high:
		return high
	default:
		return v
	}
}
