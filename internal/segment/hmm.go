package segment

// HMM holds the four-state (begin/middle/end/single) Hidden Markov Model
// parameters used to segment runs of out-of-vocabulary Han characters.
// All probabilities are natural-log. A missing char_prob or trans_prob
// entry is treated as sentinel, never as an error.
type HMM struct {
	StateProb  map[string]float64
	CharProb   map[string]map[string]float64
	TransProb  map[string]map[string]float64
	PrevStates map[string][]string
}

// hmmStates fixes the enumeration order used when building each trellis
// column; the actual transition legality comes from HMM.PrevStates.
var hmmStates = [4]string{"B", "M", "E", "S"}

func (h *HMM) emit(state string, r rune) float64 {
	if v, ok := h.CharProb[state][string(r)]; ok {
		return v
	}
	return sentinel
}

func (h *HMM) trans(from, to string) float64 {
	if v, ok := h.TransProb[from][to]; ok {
		return v
	}
	return sentinel
}

// viterbi decodes a non-empty run of Han runes into its most probable
// state sequence. Ties among predecessor states are broken by picking the
// lexicographically greater label (string order: B < E < M < S).
func viterbi(han []rune, h *HMM) []string {
	m := len(han)
	v := make([]map[string]float64, m)
	path := make(map[string][]string, 4)

	v[0] = make(map[string]float64, 4)
	for _, s := range hmmStates {
		v[0][s] = h.StateProb[s] + h.emit(s, han[0])
		path[s] = []string{s}
	}

	for j := 1; j < m; j++ {
		v[j] = make(map[string]float64, 4)
		next := make(map[string][]string, 4)
		for _, s := range hmmStates {
			emit := h.emit(s, han[j])
			best := sentinel
			bestPrev := "B"
			for k, p := range h.PrevStates[s] {
				prob := v[j-1][p] + h.trans(p, s) + emit
				switch {
				case k == 0 || prob > best:
					best = prob
					bestPrev = p
				case prob == best && p > bestPrev:
					bestPrev = p
				}
			}
			v[j][s] = best
			seq := make([]string, len(path[bestPrev])+1)
			copy(seq, path[bestPrev])
			seq[len(seq)-1] = s
			next[s] = seq
		}
		path = next
	}

	final := "S"
	if v[m-1]["E"] > v[m-1]["S"] {
		final = "E"
	}
	return path[final]
}

// emitViterbiPath walks a decoded state path and yields the words it
// implies: B marks a word's start, E closes it, S is a standalone
// character, M is a continuation.
func emitViterbiPath(han []rune, path []string, yield func(string)) {
	start := 0
	for j, state := range path {
		switch state {
		case "B":
			start = j
		case "E":
			yield(string(han[start : j+1]))
		case "S":
			yield(string(han[j]))
		}
	}
}
