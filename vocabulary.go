package classifier

// Vocabulary is the ordered set of tokens seen in a corpus. A token's
// position is its feature id. A Vocabulary is never modified after
// NewVocabulary returns it.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// NewVocabulary returns the union of the tokens in docs, in first-seen order.
func NewVocabulary(docs [][]string) *Vocabulary {
	v := &Vocabulary{
		tokens: make([]string, 0),
		index:  make(map[string]int),
	}
	for _, doc := range docs {
		for _, token := range doc {
			if _, ok := v.index[token]; ok {
				continue
			}
			v.index[token] = len(v.tokens)
			v.tokens = append(v.tokens, token)
		}
	}
	return v
}

// Len returns the number of features.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Tokens returns a copy of the tokens ordered by feature id.
func (v *Vocabulary) Tokens() []string {
	tokens := make([]string, len(v.tokens))
	copy(tokens, v.tokens)
	return tokens
}

// Index returns the feature id of token.
func (v *Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Unknown counts the tokens of doc that are not in the vocabulary.
func (v *Vocabulary) Unknown(doc []string) int {
	n := 0
	for _, token := range doc {
		if _, ok := v.index[token]; !ok {
			n++
		}
	}
	return n
}
