package segment

import "iter"

// CutText splits sentence into the ordered token sequence a reader would
// recognize as words. HAN_MIX runs go through the block segmenter (with
// or without the HMM fallback); everything else is split on SKIP, with
// skip matches emitted verbatim and all other runs emitted one codepoint
// at a time.
//
// CutText is a pure function of (sentence, dict, hmm, useHMM): it performs
// no I/O, holds no state between calls, and never panics on malformed
// input — there is no such thing, every Unicode string is total input.
func CutText(sentence string, dict *Dict, hmm *HMM, useHMM bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, piece := range splitRetain(sentence, hanMix) {
			if piece.matched {
				if !cutHanMixBlock(piece.text, dict, hmm, useHMM, yield) {
					return
				}
				continue
			}
			if !cutOtherBlock(piece.text, yield) {
				return
			}
		}
	}
}

func cutHanMixBlock(text string, dict *Dict, hmm *HMM, useHMM bool, yield func(string) bool) bool {
	block := []rune(text)
	if !useHMM {
		for _, tok := range cutBlockWithoutHMM(block, dict) {
			if !yield(tok) {
				return false
			}
		}
		return true
	}
	ok := true
	cutBlockWithHMM(block, dict, hmm, func(tok string) {
		if ok {
			ok = yield(tok)
		}
	})
	return ok
}

func cutOtherBlock(text string, yield func(string) bool) bool {
	for _, sub := range splitRetain(text, skip) {
		if sub.matched {
			if !yield(sub.text) {
				return false
			}
			continue
		}
		for _, r := range sub.text {
			if !yield(string(r)) {
				return false
			}
		}
	}
	return true
}
