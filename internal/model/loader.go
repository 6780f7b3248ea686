// Package model loads and caches the bundled dictionary and HMM presets
// that back the root jieba3.Cutter.
package model

import (
	"embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/yansh97/jieba3/internal/segment"
)

//go:embed data/*.json
var bundled embed.FS

// Name identifies one of the bundled dictionary presets.
type Name string

const (
	Base  Name = "base"
	Small Name = "small"
	Large Name = "large"
)

func (n Name) valid() bool {
	switch n {
	case Base, Small, Large:
		return true
	default:
		return false
	}
}

func (n Name) path() string {
	return "data/model." + string(n) + ".json"
}

type dictFile struct {
	Freq  map[string]int `json:"freq"`
	Total int            `json:"total"`
}

type hmmFile struct {
	StateProb  map[string]float64            `json:"state_prob"`
	CharProb   map[string]map[string]float64 `json:"char_prob"`
	TransProb  map[string]map[string]float64 `json:"trans_prob"`
	PrevStates map[string][]string           `json:"prev_states"`
}

var (
	dictOnce  sync.Map // Name -> *sync.Once
	dictCache sync.Map // Name -> *segment.Dict
	dictErr   sync.Map // Name -> error

	hmmOnce  sync.Once
	hmmCache *segment.HMM
	hmmErr   error
)

func onceFor(name Name) *sync.Once {
	once := &sync.Once{}
	actual, _ := dictOnce.LoadOrStore(name, once)
	return actual.(*sync.Once)
}

// Load returns the cached dictionary for name, parsing the bundled JSON
// asset the first time it is requested. Concurrent callers block on the
// same load and observe the same result.
func Load(name Name) (*segment.Dict, error) {
	if !name.valid() {
		return nil, errors.Errorf("model: unknown preset %q", name)
	}
	onceFor(name).Do(func() {
		dict, err := loadDictAsset(name.path())
		if err != nil {
			dictErr.Store(name, err)
			return
		}
		dictCache.Store(name, dict)
		log.Debug().Str("preset", string(name)).Int("terms", len(dict.Freq)).Msg("model: loaded bundled dictionary")
	})
	if err, ok := dictErr.Load(name); ok {
		return nil, err.(error)
	}
	cached, _ := dictCache.Load(name)
	return cached.(*segment.Dict), nil
}

// LoadFromFile parses a dictionary JSON file from disk, bypassing the
// bundled-asset cache. Useful for callers supplying their own model.
func LoadFromFile(path string) (*segment.Dict, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "model: read dictionary file %q", path)
	}
	return parseDict(raw, path)
}

// LoadHMM returns the cached HMM parameter table, parsing the bundled
// hmm.json asset once per process.
func LoadHMM() (*segment.HMM, error) {
	hmmOnce.Do(func() {
		raw, err := bundled.ReadFile("data/hmm.json")
		if err != nil {
			hmmErr = errors.Wrap(err, "model: read bundled hmm.json")
			return
		}
		hmmCache, hmmErr = parseHMM(raw, "data/hmm.json")
		if hmmErr == nil {
			log.Debug().Int("states", len(hmmCache.StateProb)).Msg("model: loaded bundled HMM")
		}
	})
	if hmmErr != nil {
		return nil, hmmErr
	}
	return hmmCache, nil
}

// LoadHMMFromFile parses an HMM parameter JSON file from disk.
func LoadHMMFromFile(path string) (*segment.HMM, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "model: read hmm file %q", path)
	}
	return parseHMM(raw, path)
}

func loadDictAsset(path string) (*segment.Dict, error) {
	raw, err := bundled.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "model: read bundled asset %q", path)
	}
	return parseDict(raw, path)
}

func parseDict(raw []byte, source string) (*segment.Dict, error) {
	var f dictFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "model: decode dictionary %q", source)
	}
	if f.Total <= 0 {
		return nil, errors.Errorf("model: dictionary %q has non-positive total %d", source, f.Total)
	}
	return &segment.Dict{Freq: f.Freq, Total: f.Total}, nil
}

func parseHMM(raw []byte, source string) (*segment.HMM, error) {
	var f hmmFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "model: decode HMM table %q", source)
	}
	for _, state := range []string{"B", "M", "E", "S"} {
		if _, ok := f.StateProb[state]; !ok {
			return nil, errors.Errorf("model: HMM table %q missing state_prob[%q]", source, state)
		}
	}
	return &segment.HMM{
		StateProb:  f.StateProb,
		CharProb:   f.CharProb,
		TransProb:  f.TransProb,
		PrevStates: f.PrevStates,
	}, nil
}
