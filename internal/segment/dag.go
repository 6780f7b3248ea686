package segment

// dagEdge is one outgoing edge of the prefix DAG: block[i:end] is a
// dictionary word of the given frequency.
type dagEdge struct {
	end  int
	freq int
}

// buildDAG produces, for every starting position in block, the ordered
// list of viable continuation endpoints. Position i is extended rune by
// rune until the accumulated substring is no longer a prefix of anything
// in dict, at which point the scan for that position stops (dict's
// every-prefix-is-a-key invariant is what makes this early stop correct).
// A position with no dictionary edges falls back to a single-rune edge,
// so every position has at least one way out.
func buildDAG(block []rune, dict *Dict) [][]dagEdge {
	n := len(block)
	dag := make([][]dagEdge, n)
	for i := 0; i < n; i++ {
		var edges []dagEdge
		for j := i + 1; j <= n; j++ {
			freq, ok := dict.Freq[string(block[i:j])]
			if !ok {
				break
			}
			if freq > 0 {
				edges = append(edges, dagEdge{end: j, freq: freq})
			}
		}
		if len(edges) == 0 {
			edges = append(edges, dagEdge{end: i + 1, freq: 1})
		}
		dag[i] = edges
	}
	return dag
}
