package segment

// cutBlockWithoutHMM walks the DP route for block and collapses maximal
// runs of single-rune ASCII-alnum cuts into one token. Non-ASCII
// single-rune cuts (a lone Han character the DP couldn't join to a
// neighbor) are emitted individually, never buffered.
func cutBlockWithoutHMM(block []rune, dict *Dict) []string {
	route := solveRoute(buildDAG(block, dict), dict)
	n := len(block)

	var out []string
	var buf []rune
	flush := func() {
		if len(buf) > 0 {
			out = append(out, string(buf))
			buf = nil
		}
	}
	for i := 0; i < n; {
		j := route[i]
		piece := block[i:j]
		if j-i == 1 && isASCIIAlnum(piece[0]) {
			buf = append(buf, piece[0])
			i = j
			continue
		}
		flush()
		out = append(out, string(piece))
		i = j
	}
	flush()
	return out
}

// cutBlockWithHMM walks the same DP route, but buffers every single-rune
// cut regardless of character class. A flushed buffer of length 1 is
// emitted as-is; a longer buffer that happens to be a dictionary word
// itself is exploded back to individual runes (the DP already considered
// the whole word and chose to fragment it); otherwise the buffer is handed
// to the HMM wrapper.
func cutBlockWithHMM(block []rune, dict *Dict, hmm *HMM, yield func(string)) {
	route := solveRoute(buildDAG(block, dict), dict)
	n := len(block)

	var buf []rune
	flush := func() {
		switch len(buf) {
		case 0:
			return
		case 1:
			yield(string(buf))
		default:
			word := string(buf)
			if freq, ok := dict.Freq[word]; ok && freq > 0 {
				for _, r := range buf {
					yield(string(r))
				}
			} else {
				hmmCutBuffer(buf, hmm, yield)
			}
		}
		buf = nil
	}
	for i := 0; i < n; {
		j := route[i]
		if j-i == 1 {
			buf = append(buf, block[i])
			i = j
			continue
		}
		flush()
		yield(string(block[i:j]))
		i = j
	}
	flush()
}

// hmmCutBuffer splits buf into Han and non-Han runs, Viterbi-decodes the
// Han runs, and further splits non-Han runs on the ASCII-word pattern,
// yielding every non-empty resulting piece unchanged.
func hmmCutBuffer(buf []rune, hmm *HMM, yield func(string)) {
	for _, piece := range splitRetain(string(buf), pureHan) {
		if piece.matched {
			han := []rune(piece.text)
			emitViterbiPath(han, viterbi(han, hmm), yield)
			continue
		}
		for _, sub := range splitRetain(piece.text, asciiWord) {
			yield(sub.text)
		}
	}
}
