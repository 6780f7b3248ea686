package segment

import "iter"

// CutQuery is CutText followed by an n-gram expansion: for each token w
// of length n (in codepoints), every 2-gram that is itself a dictionary
// word is emitted left to right, then every such 3-gram, then w itself.
// The extra grams exist purely to improve search recall; w is always the
// last thing yielded for itself.
func CutQuery(sentence string, dict *Dict, hmm *HMM, useHMM bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for tok := range CutText(sentence, dict, hmm, useHMM) {
			runes := []rune(tok)
			n := len(runes)
			if n > 2 {
				for i := 0; i < n-1; i++ {
					if gram := string(runes[i : i+2]); dict.hasGram(gram) {
						if !yield(gram) {
							return
						}
					}
				}
			}
			if n > 3 {
				for i := 0; i < n-2; i++ {
					if gram := string(runes[i : i+3]); dict.hasGram(gram) {
						if !yield(gram) {
							return
						}
					}
				}
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func (d *Dict) hasGram(gram string) bool {
	freq, ok := d.Freq[gram]
	return ok && freq > 0
}
