package classifier

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Model is a trained two-class naive Bayes model. HamLogProb and SpamLogProb
// hold log P(token|class) indexed by feature id, SpamPrior is P(spam).
type Model struct {
	HamLogProb  []float64
	SpamLogProb []float64
	SpamPrior   float64
}

// Dimension returns the number of features the model was trained on.
func (m *Model) Dimension() int {
	return len(m.SpamLogProb)
}

// Train estimates a Model from document vectors and their labels.
//
// Every per-class feature count starts at 1 and every per-class total at 2,
// so no conditional probability is ever zero and every log-probability is
// finite and at most 0.
func Train(matrix []Vector, labels []Label) (*Model, error) {
	if len(matrix) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if len(matrix) != len(labels) {
		return nil, fmt.Errorf("%w: %d vectors, %d labels", ErrLabelCountMismatch, len(matrix), len(labels))
	}

	n := len(matrix[0])
	counts := [2][]float64{ones(n), ones(n)}
	totals := [2]float64{2.0, 2.0}
	spam := 0
	for i, vec := range matrix {
		if len(vec) != n {
			return nil, &DimensionMismatchError{Want: n, Got: len(vec)}
		}
		label := labels[i]
		if !label.Valid() {
			return nil, fmt.Errorf("%w: %d at document %d", ErrInvalidLabel, int(label), i)
		}
		if label == Spam {
			spam++
		}
		floats.Add(counts[label], vec)
		totals[label] += floats.Sum(vec)
	}

	return &Model{
		HamLogProb:  logRatio(counts[Ham], totals[Ham]),
		SpamLogProb: logRatio(counts[Spam], totals[Spam]),
		SpamPrior:   float64(spam) / float64(len(matrix)),
	}, nil
}

func ones(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = 1.0
	}
	return s
}

func logRatio(counts []float64, total float64) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = math.Log(c / total)
	}
	return out
}
