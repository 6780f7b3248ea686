package segment

import "math"

// solveRoute runs the right-to-left dynamic program over dag and returns,
// for every position i, the end index of the chosen next word. Ties are
// broken in favor of the edge visited last in forward enumeration order —
// i.e. the longest candidate word — by using >= rather than > when a new
// best is found.
func solveRoute(dag [][]dagEdge, dict *Dict) []int {
	n := len(dag)
	logTotal := dict.logTotal()
	probs := make([]float64, n+1) // probs[n] == 0, the DP base case
	route := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		best := sentinel
		end := i + 1
		for _, e := range dag[i] {
			p := math.Log(float64(e.freq)) - logTotal + probs[e.end]
			if p >= best {
				best = p
				end = e.end
			}
		}
		probs[i] = best
		route[i] = end
	}
	return route
}
