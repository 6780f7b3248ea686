package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_bundledPresets(t *testing.T) {
	for _, name := range []Name{Base, Small, Large} {
		dict, err := Load(name)
		require.NoError(t, err)
		require.NotNil(t, dict)
		require.Greater(t, dict.Total, 0)
		require.NotEmpty(t, dict.Freq)
	}
}

func TestLoad_cachesSameValue(t *testing.T) {
	a, err := Load(Small)
	require.NoError(t, err)
	b, err := Load(Small)
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestLoad_unknownPreset(t *testing.T) {
	_, err := Load(Name("huge"))
	require.Error(t, err)
}

func TestLoadHMM_bundled(t *testing.T) {
	h, err := LoadHMM()
	require.NoError(t, err)
	require.NotNil(t, h)
	for _, state := range []string{"B", "M", "E", "S"} {
		require.Contains(t, h.StateProb, state)
	}
}

func TestLoadHMM_caches(t *testing.T) {
	a, err := LoadHMM()
	require.NoError(t, err)
	b, err := LoadHMM()
	require.NoError(t, err)
	require.Same(t, a, b)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"freq":{"好":10,"用":5},"total":15}`), 0o644))

	dict, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, 15, dict.Total)
	require.Equal(t, 10, dict.Freq["好"])
}

func TestLoadFromFile_missingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadFromFile_invalidTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"freq":{},"total":0}`), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func TestLoadHMMFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hmm.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"state_prob": {"B": -0.3, "M": -6.0, "E": -6.0, "S": -1.3},
		"char_prob": {"B": {"杭": -2.0}},
		"trans_prob": {"B": {"E": -0.5}},
		"prev_states": {"B": ["E", "S"]}
	}`), 0o644))

	h, err := LoadHMMFromFile(path)
	require.NoError(t, err)
	require.Equal(t, -0.3, h.StateProb["B"])
}

func TestLoadHMMFromFile_missingState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hmm.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"state_prob":{"B":-0.3}}`), 0o644))

	_, err := LoadHMMFromFile(path)
	require.Error(t, err)
}
