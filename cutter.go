// Package jieba3 is a Chinese word segmenter: a prefix-DAG and HMM-backed
// port of the jieba tokenizer.
package jieba3

import (
	"slices"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/yansh97/jieba3/internal/model"
	"github.com/yansh97/jieba3/internal/segment"
)

// Cutter binds a dictionary preset and an HMM toggle, matching the
// Python jieba3 object's (model, use_hmm) pair. A Cutter is immutable
// after construction and safe for concurrent use.
type Cutter struct {
	modelName model.Name
	useHMM    bool
	dict      *segment.Dict
	hmm       *segment.HMM
}

// NewCutter validates name against the three bundled presets and loads
// the corresponding dictionary and HMM tables before returning. An
// unrecognized model name is rejected here, never inside CutText or
// CutQuery.
func NewCutter(name string, useHMM bool) (*Cutter, error) {
	modelName := model.Name(name)
	dict, err := model.Load(modelName)
	if err != nil {
		return nil, errors.Wrapf(err, "jieba3: construct cutter with model %q", name)
	}
	hmm, err := model.LoadHMM()
	if err != nil {
		return nil, errors.Wrap(err, "jieba3: construct cutter")
	}
	return &Cutter{modelName: modelName, useHMM: useHMM, dict: dict, hmm: hmm}, nil
}

// CutText tokenizes sentence and collects the result eagerly.
func (c *Cutter) CutText(sentence string) []string {
	return slices.Collect(segment.CutText(sentence, c.dict, c.hmm, c.useHMM))
}

// CutQuery tokenizes sentence for search indexing, additionally emitting
// sub-gram expansions of long tokens. The same dictionary is used for
// both the cut_text walk and the n-gram filter, so the two can never
// observe different tables within one call.
func (c *Cutter) CutQuery(sentence string) []string {
	return slices.Collect(segment.CutQuery(sentence, c.dict, c.hmm, c.useHMM))
}

type textBlock struct {
	id   int
	text string
}

type resultBlock struct {
	id     int
	tokens []string
}

// CutParallel splits sentence on HAN_MIX boundaries and tokenizes the
// blocks concurrently across numWorkers goroutines. If ordered is true,
// the returned tokens are reassembled in input order at a roughly 30%
// cost; otherwise blocks are flattened in whatever order workers finish.
func (c *Cutter) CutParallel(sentence string, numWorkers int, ordered bool) []string {
	if numWorkers < 1 {
		numWorkers = 1
	}
	blocks := splitIntoBlocks(sentence)

	work := make(chan textBlock, len(blocks))
	go func() {
		defer close(work)
		for _, b := range blocks {
			work <- b
		}
	}()

	results := make(chan resultBlock, len(blocks))
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for b := range work {
				results <- resultBlock{id: b.id, tokens: c.CutText(b.text)}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]resultBlock, 0, len(blocks))
	for r := range results {
		collected = append(collected, r)
	}
	if ordered {
		sort.Slice(collected, func(i, j int) bool { return collected[i].id < collected[j].id })
	}

	var out []string
	for _, r := range collected {
		out = append(out, r.tokens...)
	}
	return out
}

// splitIntoBlocks divides sentence into one textBlock per maximal
// HAN_MIX/non-HAN_MIX run, mirroring the dispatcher's own splitting so
// each block can be tokenized independently by a worker.
func splitIntoBlocks(sentence string) []textBlock {
	var blocks []textBlock
	for i, span := range segment.SplitHanMix(sentence) {
		blocks = append(blocks, textBlock{id: i, text: span})
	}
	return blocks
}
