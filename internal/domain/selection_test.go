package domain

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRand creates a deterministic random number generator for testing.
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // weak random is fine for selection tests
}

func testSelectionConfig(formula AverageFormula) SelectionConfig {
	return SelectionConfig{
		CandidateCount: 5,
		AverageFormula: formula,
		FavouredWeight: 3,
	}
}

func TestComputeAverage(t *testing.T) {
	cases := []struct {
		name       string
		candidates []CategoryCandidate
		formula    AverageFormula
		expected   float64
	}{
		{
			name:     "empty",
			formula:  AverageFormulaInverted,
			expected: 0,
		},
		{
			name: "inverted_zero_sum",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 0},
				{CategoryID: 2, Score: 0},
			},
			formula:  AverageFormulaInverted,
			expected: 0,
		},
		{
			name: "inverted",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 6},
				{CategoryID: 2, Score: 2},
			},
			formula:  AverageFormulaInverted,
			expected: 0.25,
		},
		{
			name: "mean",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 6},
				{CategoryID: 2, Score: 2},
			},
			formula:  AverageFormulaMean,
			expected: 4,
		},
		{
			name: "mean_zero_sum",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 0},
			},
			formula:  AverageFormulaMean,
			expected: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ComputeAverage(tc.candidates, tc.formula), 1e-9)
		})
	}
}

func TestBuildWeightedPool(t *testing.T) {
	cases := []struct {
		name       string
		candidates []CategoryCandidate
		average    float64
		expected   []int64
	}{
		{
			name:       "single_candidate_favoured",
			candidates: []CategoryCandidate{{CategoryID: 7, Score: 0}},
			average:    0,
			expected:   []int64{7, 7, 7},
		},
		{
			name: "below_average_inserted_once",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 6},
				{CategoryID: 2, Score: 2},
			},
			average:  4,
			expected: []int64{1, 1, 1, 2},
		},
		{
			name: "negative_scores_still_present",
			candidates: []CategoryCandidate{
				{CategoryID: 1, Score: 1},
				{CategoryID: 2, Score: -3},
			},
			average:  0.5,
			expected: []int64{1, 1, 1, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildWeightedPool(tc.candidates, tc.average, 3))
		})
	}
}

func TestBuildWeightedPool_ContainsEveryCandidate(t *testing.T) {
	rng := newTestRand(42)

	for range 200 {
		n := rng.IntN(8) + 1
		candidates := make([]CategoryCandidate, n)
		for i := range candidates {
			candidates[i] = CategoryCandidate{CategoryID: int64(i + 1), Score: int64(rng.IntN(21) - 10)}
		}

		for _, formula := range []AverageFormula{AverageFormulaInverted, AverageFormulaMean} {
			pool := BuildWeightedPool(candidates, ComputeAverage(candidates, formula), 3)
			for _, c := range candidates {
				assert.Contains(t, pool, c.CategoryID)
			}
		}
	}
}

func TestSelectCategory(t *testing.T) {
	t.Run("no_candidates", func(t *testing.T) {
		_, err := SelectCategory(nil, testSelectionConfig(AverageFormulaInverted), newTestRand(1))
		require.ErrorIs(t, err, ErrNoCategoriesAvailable)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("single_candidate_boundary", func(t *testing.T) {
		candidates := []CategoryCandidate{{CategoryID: 3, Score: 0}}
		rng := newTestRand(7)
		for range 100 {
			id, err := SelectCategory(candidates, testSelectionConfig(AverageFormulaInverted), rng)
			require.NoError(t, err)
			assert.Equal(t, int64(3), id)
		}
	})

	t.Run("selected_id_is_candidate", func(t *testing.T) {
		candidates := []CategoryCandidate{
			{CategoryID: 10, Score: 4},
			{CategoryID: 20, Score: 0},
			{CategoryID: 30, Score: 1},
		}
		allowed := map[int64]bool{10: true, 20: true, 30: true}
		seen := map[int64]bool{}

		rng := newTestRand(99)
		for _, formula := range []AverageFormula{AverageFormulaInverted, AverageFormulaMean} {
			for range 500 {
				id, err := SelectCategory(candidates, testSelectionConfig(formula), rng)
				require.NoError(t, err)
				assert.True(t, allowed[id], "unexpected category %d", id)
				seen[id] = true
			}
		}
		assert.Len(t, seen, 3)
	})
}

func TestLockedRand_IntN(t *testing.T) {
	rng := NewLockedRand(newTestRand(5))
	for range 100 {
		v := rng.IntN(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}

func TestParseAverageFormula(t *testing.T) {
	f, err := ParseAverageFormula("mean")
	require.NoError(t, err)
	assert.Equal(t, AverageFormulaMean, f)

	_, err = ParseAverageFormula("median")
	assert.Error(t, err)
}

func TestSelectionConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(cfg *SelectionConfig)
		wantErr bool
	}{
		{name: "default", mutate: func(*SelectionConfig) {}},
		{name: "single_candidate", mutate: func(cfg *SelectionConfig) { cfg.CandidateCount = 1 }},
		{name: "zero_candidates", mutate: func(cfg *SelectionConfig) { cfg.CandidateCount = 0 }, wantErr: true},
		{name: "negative_candidates", mutate: func(cfg *SelectionConfig) { cfg.CandidateCount = -2 }, wantErr: true},
		{name: "zero_weight", mutate: func(cfg *SelectionConfig) { cfg.FavouredWeight = 0 }, wantErr: true},
		{name: "unknown_formula", mutate: func(cfg *SelectionConfig) { cfg.AverageFormula = "median" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testSelectionConfig(AverageFormulaInverted)
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelectionConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
