package segment

// testDict is a small, hand-built model table covering enough vocabulary
// to exercise the DAG builder, the route solver and the query expander
// against worked examples. Every proper prefix of every word below is
// present, either as another word or as an explicit zero-frequency
// prefix key, per the Dict invariant.
func testDict() *Dict {
	freq := map[string]int{
		// words
		"于":      2000,
		"中国":     5000,
		"科学":     3000,
		"学院":     2500,
		"科学院":    1200,
		"中国科学院":  600,
		"计算":     1500,
		"计算所":    400,
		"所":      1800,
		"他":      4000,
		"来到":     700,
		"了":      6000,
		"网易":     900,
		"大厦":     650,
		"好":      3500,
		"用":      2200,
		"好用":     300,
		"很":      1800,
		"小明":     300,
		"硕士":     500,
		"毕业":     800,
		// prefix-only entries (frequency 0)
		"小":    0,
		"硕":    0,
		"毕":    0,
		"中":    0,
		"中国科":  0,
		"中国科学": 0,
		"学":    0,
		"科":    0,
		"计":    0,
		"来":    0,
		"网":    0,
		"大":    0,
	}
	total := 0
	for _, f := range freq {
		total += f
	}
	return &Dict{Freq: freq, Total: total}
}

// testHMM carries hand-chosen parameters for exactly one scenario: a
// 2-rune out-of-vocabulary run ("杭研") that should fuse into a single
// token under Viterbi decoding rather than fall out as two singles. The
// numbers are arbitrary log-probabilities picked to make that outcome
// fall out of the algorithm, not measurements from a trained model.
func testHMM() *HMM {
	return &HMM{
		StateProb: map[string]float64{
			"B": -0.3, "M": -6.0, "E": -6.0, "S": -1.3,
		},
		CharProb: map[string]map[string]float64{
			"B": {"杭": -2.0, "研": -6.0},
			"M": {"杭": -8.0, "研": -6.0},
			"E": {"杭": -8.0, "研": -2.0},
			"S": {"杭": -8.0, "研": -8.0},
		},
		TransProb: map[string]map[string]float64{
			"B": {"E": -0.5, "M": -0.9},
			"E": {"B": -0.6, "S": -0.8},
			"M": {"E": -0.3, "M": -1.3},
			"S": {"B": -0.7, "S": -0.7},
		},
		PrevStates: map[string][]string{
			"B": {"E", "S"},
			"M": {"B", "M"},
			"E": {"B", "M"},
			"S": {"E", "S"},
		},
	}
}
