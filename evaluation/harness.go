package evaluation

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	classifier "github.com/samuel/go-nbclassifier"
	"github.com/samuel/go-nbclassifier/internal/logger"
)

// ErrNoRuns is returned by Repeat when asked for fewer than one run.
var ErrNoRuns = errors.New("evaluation: at least one run is required")

// Options configures an evaluation run.
type Options struct {
	HoldOut int
	Mode    classifier.Mode
	// Rand drives the train/held-out split. Nil means a clock-seeded source.
	Rand   *rand.Rand
	Logger *logger.Logger
}

// Misclassification is a held-out document the model got wrong.
type Misclassification struct {
	Index     int
	Name      string
	Label     classifier.Label
	Predicted classifier.Label
	Tokens    []string
}

// Result is the outcome of one evaluation run.
type Result struct {
	RunID         uuid.UUID
	Mode          classifier.Mode
	Vocabulary    int
	Train         []int
	Test          []int
	SpamPrior     float64
	Misclassified []Misclassification
	// ErrorRate is the percentage of held-out documents misclassified, 0 when
	// nothing was held out.
	ErrorRate float64
}

func (o *Options) rng() *rand.Rand {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o.Rand
}

// Evaluate builds a vocabulary over all of docs, holds out opts.HoldOut
// documents at random, trains on the rest and classifies the held-out ones.
func Evaluate(docs []classifier.Document, opts Options) (*Result, error) {
	train, test, err := Split(len(docs), opts.HoldOut, opts.rng())
	if err != nil {
		return nil, err
	}

	tokens := make([][]string, len(docs))
	for i, doc := range docs {
		tokens[i] = doc.Tokens
	}
	vocab := classifier.NewVocabulary(tokens)
	vectors := vocab.VectorizeAll(tokens, opts.Mode)

	matrix := make([]classifier.Vector, len(train))
	labels := make([]classifier.Label, len(train))
	for i, idx := range train {
		matrix[i] = vectors[idx]
		labels[i] = docs[idx].Label
	}
	model, err := classifier.Train(matrix, labels)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:         uuid.New(),
		Mode:          opts.Mode,
		Vocabulary:    vocab.Len(),
		Train:         train,
		Test:          test,
		SpamPrior:     model.SpamPrior,
		Misclassified: make([]Misclassification, 0),
	}
	for _, idx := range test {
		predicted, err := model.Classify(vectors[idx])
		if err != nil {
			return nil, err
		}
		opts.Logger.Debug("run %s: %s is %s, predicted %s", res.RunID, docs[idx].Name, docs[idx].Label, predicted)
		if predicted != docs[idx].Label {
			res.Misclassified = append(res.Misclassified, Misclassification{
				Index:     idx,
				Name:      docs[idx].Name,
				Label:     docs[idx].Label,
				Predicted: predicted,
				Tokens:    docs[idx].Tokens,
			})
		}
	}
	if len(test) > 0 {
		res.ErrorRate = float64(len(res.Misclassified)) / float64(len(test)) * 100
	}
	opts.Logger.Info("run %s: %d train, %d held out, %d features, error rate %.2f%%",
		res.RunID, len(train), len(test), res.Vocabulary, res.ErrorRate)
	return res, nil
}

// Repeat performs runs independent evaluations sharing opts.Rand, so a
// seeded source reproduces the whole sequence of splits. It returns every
// result and the mean error rate.
func Repeat(docs []classifier.Document, runs int, opts Options) ([]*Result, float64, error) {
	if runs < 1 {
		return nil, 0, ErrNoRuns
	}
	opts.rng()
	results := make([]*Result, 0, runs)
	sum := 0.0
	for i := 0; i < runs; i++ {
		res, err := Evaluate(docs, opts)
		if err != nil {
			return nil, 0, err
		}
		results = append(results, res)
		sum += res.ErrorRate
	}
	return results, sum / float64(runs), nil
}
