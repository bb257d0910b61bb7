package classifier

import (
	"fmt"
	"strings"
)

// Mode selects how a document is turned into a vector.
type Mode int

const (
	// Presence sets a feature to 1 when the token occurs at least once.
	Presence Mode = iota
	// Count sets a feature to the number of occurrences of the token.
	Count
)

func (m Mode) String() string {
	switch m {
	case Presence:
		return "presence"
	case Count:
		return "count"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode parses "presence" or "count".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "presence", "set":
		return Presence, nil
	case "count", "bag":
		return Count, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Vector is a document encoded over a vocabulary's features.
type Vector []float64

// Vectorize encodes doc over the vocabulary. Tokens missing from the
// vocabulary are ignored. The result always has v.Len() elements.
func (v *Vocabulary) Vectorize(doc []string, mode Mode) Vector {
	vec := make(Vector, len(v.tokens))
	for _, token := range doc {
		i, ok := v.index[token]
		if !ok {
			continue
		}
		if mode == Count {
			vec[i]++
		} else {
			vec[i] = 1
		}
	}
	return vec
}

// VectorizeAll encodes each document in docs.
func (v *Vocabulary) VectorizeAll(docs [][]string, mode Mode) []Vector {
	vecs := make([]Vector, len(docs))
	for i, doc := range docs {
		vecs[i] = v.Vectorize(doc, mode)
	}
	return vecs
}
