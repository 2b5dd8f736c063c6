package walk

// FindCycle returns the first cycle reachable from roots in the graph described by next,
// as the path from the repeated node back to itself (first element == last element).
// Roots are explored in order and edges in the order next returns them.
func FindCycle[T comparable](roots []T, next func(T) []T) []T {
	const (
		unvisited = iota
		onStack
		finished
	)

	state := make(map[T]int)

	var stack []T

	var visit func(T) []T
	visit = func(n T) []T {
		state[n] = onStack
		stack = append(stack, n)

		for _, m := range next(n) {
			switch state[m] {
			case onStack:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == m {
						return append(append([]T(nil), stack[i:]...), m)
					}
				}
			case unvisited:
				if cycle := visit(m); cycle != nil {
					return cycle
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[n] = finished

		return nil
	}

	for _, r := range roots {
		if state[r] != unvisited {
			continue
		}

		if cycle := visit(r); cycle != nil {
			return cycle
		}
	}

	return nil
}
