package scheduler

type direction int

const (
	forward direction = iota
	backward
)

// lastMatchIndex walks [0, n) in dir and returns the index of the last
// position satisfying pred, or -1.
func lastMatchIndex(n int, dir direction, pred func(i int) bool) int {
	found := -1
	for k := 0; k < n; k++ {
		i := k
		if dir == backward {
			i = n - 1 - k
		}
		if pred(i) {
			found = i
		}
	}
	return found
}

// lastMatch is lastMatchIndex over a slice.
func lastMatch[T any](items []T, dir direction, pred func(T) bool) (T, bool) {
	i := lastMatchIndex(len(items), dir, func(i int) bool { return pred(items[i]) })
	if i < 0 {
		var zero T
		return zero, false
	}
	return items[i], true
}
