package corpus

import (
	"github.com/pkg/errors"

	classifier "github.com/samuel/go-nbclassifier"
)

// Tokenize runs every document body through t.
func Tokenize(docs []Document, t classifier.Tokenizer) ([]classifier.Document, error) {
	out := make([]classifier.Document, len(docs))
	for i, doc := range docs {
		tokens, err := t.Tokenize(doc.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "corpus: tokenizing %s", doc.Name)
		}
		out[i] = classifier.Document{Name: doc.Name, Label: doc.Label, Tokens: tokens}
	}
	return out, nil
}
