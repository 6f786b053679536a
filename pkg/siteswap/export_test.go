package siteswap

// LandingsArePermutation exposes the landing check without the
// divisibility shortcut.
func LandingsArePermutation(p Pattern) bool {
	return p.landingsArePermutation()
}

// Visit runs the odometer to exhaustion and returns every digit vector in
// visit order.
func Visit(maxDepth, height int, order Order) [][]int {
	od := newOdometer(maxDepth, height)

	var visited [][]int
	for !od.done() {
		visited = append(visited, append([]int(nil), od.digits()...))
		od.advance(order)
	}

	return visited
}
