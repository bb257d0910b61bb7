package classifier

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Scores returns the log-space score of v under each class:
// dot(v, logP(token|class)) + log P(class).
func (m *Model) Scores(v Vector) (ham, spam float64, err error) {
	if len(v) != m.Dimension() {
		return 0, 0, &DimensionMismatchError{Want: m.Dimension(), Got: len(v)}
	}
	// log(0) is -Inf when the training set held a single class, which
	// makes the absent class lose every comparison.
	spam = floats.Dot(v, m.SpamLogProb) + math.Log(m.SpamPrior)
	ham = floats.Dot(v, m.HamLogProb) + math.Log(1.0-m.SpamPrior)
	return ham, spam, nil
}

// Classify returns Spam if v scores strictly higher under spam than under
// ham. Exact ties are Ham.
func (m *Model) Classify(v Vector) (Label, error) {
	ham, spam, err := m.Scores(v)
	if err != nil {
		return Ham, err
	}
	if spam > ham {
		return Spam, nil
	}
	return Ham, nil
}

// Classifier binds a Model to the Vocabulary and Mode it was trained with so
// token lists can be classified directly.
type Classifier struct {
	vocab *Vocabulary
	model *Model
	mode  Mode
}

// NewClassifier returns a Classifier, checking that model and vocab agree on
// the number of features.
func NewClassifier(vocab *Vocabulary, model *Model, mode Mode) (*Classifier, error) {
	if vocab.Len() != model.Dimension() {
		return nil, &DimensionMismatchError{Want: vocab.Len(), Got: model.Dimension()}
	}
	return &Classifier{vocab: vocab, model: model, mode: mode}, nil
}

// Fit builds a vocabulary over docs, vectorizes them and trains a model.
func Fit(docs []Document, mode Mode) (*Classifier, error) {
	tokens := make([][]string, len(docs))
	labels := make([]Label, len(docs))
	for i, doc := range docs {
		tokens[i] = doc.Tokens
		labels[i] = doc.Label
	}
	vocab := NewVocabulary(tokens)
	model, err := Train(vocab.VectorizeAll(tokens, mode), labels)
	if err != nil {
		return nil, err
	}
	return &Classifier{vocab: vocab, model: model, mode: mode}, nil
}

// Vocabulary returns the classifier's vocabulary.
func (c *Classifier) Vocabulary() *Vocabulary { return c.vocab }

// Model returns the classifier's model.
func (c *Classifier) Model() *Model { return c.model }

// Predict classifies a token list.
func (c *Classifier) Predict(tokens []string) (Label, error) {
	return c.model.Classify(c.vocab.Vectorize(tokens, c.mode))
}
