package domain

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// AverageFormula chooses how the selection threshold is derived from candidate scores.
type AverageFormula string

const (
	// AverageFormulaInverted is count / sum(scores).
	AverageFormulaInverted AverageFormula = "inverted"
	// AverageFormulaMean is sum(scores) / count.
	AverageFormulaMean AverageFormula = "mean"
)

func ParseAverageFormula(s string) (AverageFormula, error) {
	switch AverageFormula(s) {
	case AverageFormulaInverted, AverageFormulaMean:
		return AverageFormula(s), nil
	default:
		return "", fmt.Errorf("unknown average formula [%s]", s)
	}
}

// SelectionConfig holds the policy knobs of the category selector.
type SelectionConfig struct {
	// CandidateCount is the maximum number of categories considered per draw.
	CandidateCount int
	AverageFormula AverageFormula
	// FavouredWeight is how many pool entries an at-or-above-average candidate gets.
	FavouredWeight int
}

var ErrInvalidSelectionConfig = errors.New("invalid selection config")

// Validate rejects configs that would leave the selector with nothing to draw from.
func (c SelectionConfig) Validate() error {
	if c.CandidateCount < 1 {
		return fmt.Errorf("%w: candidate count must be at least 1, got %d", ErrInvalidSelectionConfig, c.CandidateCount)
	}
	if c.FavouredWeight < 1 {
		return fmt.Errorf("%w: favoured weight must be at least 1, got %d", ErrInvalidSelectionConfig, c.FavouredWeight)
	}
	if _, err := ParseAverageFormula(string(c.AverageFormula)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelectionConfig, err)
	}
	return nil
}

// RandomSource is the subset of *rand.Rand used for draws.
type RandomSource interface {
	IntN(n int) int
}

// LockedRand serialises access to a *rand.Rand so it can be shared between requests.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLockedRand(rng *rand.Rand) *LockedRand {
	return &LockedRand{rng: rng}
}

func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// ComputeAverage returns the score threshold at or above which a candidate is favoured.
// A zero denominator yields 0.
func ComputeAverage(candidates []CategoryCandidate, formula AverageFormula) float64 {
	if len(candidates) == 0 {
		return 0
	}

	var sum int64
	for _, c := range candidates {
		sum += c.Score
	}

	switch formula {
	case AverageFormulaMean:
		return float64(sum) / float64(len(candidates))
	default:
		if sum == 0 {
			return 0
		}
		return float64(len(candidates)) / float64(sum)
	}
}

// BuildWeightedPool expands candidates into a pool of category ids where every
// candidate appears at least once and favoured candidates appear favouredWeight times.
func BuildWeightedPool(candidates []CategoryCandidate, average float64, favouredWeight int) []int64 {
	if favouredWeight < 1 {
		favouredWeight = 1
	}

	pool := make([]int64, 0, len(candidates)*favouredWeight)
	for _, c := range candidates {
		copies := 1
		if float64(c.Score) >= average {
			copies = favouredWeight
		}
		for range copies {
			pool = append(pool, c.CategoryID)
		}
	}
	return pool
}

// SelectCategory draws one category id from candidates using the weighted pool.
func SelectCategory(candidates []CategoryCandidate, cfg SelectionConfig, rng RandomSource) (int64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCategoriesAvailable
	}

	average := ComputeAverage(candidates, cfg.AverageFormula)
	pool := BuildWeightedPool(candidates, average, cfg.FavouredWeight)
	return pool[rng.IntN(len(pool))], nil
}
