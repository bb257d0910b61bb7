package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-ego/gse"
	"github.com/tebeka/snowball"
)

// Tokenizer is the interface for a text tokenizer
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// keep drops tokens of one character or less, counted in runes.
func keep(token string) bool {
	return utf8.RuneCountInString(token) > 1
}

type simpleTokenizer struct{}

// SimpleTokenizer splits on whitespace using strings.Fields, lower-cases,
// and removes tokens shorter than 2 characters. Duplicates are kept.
var SimpleTokenizer = simpleTokenizer{}

func (t simpleTokenizer) Tokenize(text string) ([]string, error) {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if keep(f) {
			tokens = append(tokens, strings.ToLower(f))
		}
	}
	return tokens, nil
}

var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// StemmingTokenizer splits Latin-script text on anything that is not a
// letter or digit and reduces each word to its snowball stem.
type StemmingTokenizer struct {
	stemmer *snowball.Stemmer
}

// NewStemmingTokenizer returns a StemmingTokenizer for a snowball language
// such as "english". Call Close when done.
func NewStemmingTokenizer(language string) (*StemmingTokenizer, error) {
	stemmer, err := snowball.New(language)
	if err != nil {
		return nil, err
	}
	return &StemmingTokenizer{stemmer: stemmer}, nil
}

func (t *StemmingTokenizer) Tokenize(text string) ([]string, error) {
	words := nonWordRegex.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if !keep(w) {
			continue
		}
		if s := t.stemmer.Stem(w); keep(s) {
			tokens = append(tokens, s)
		}
	}
	return tokens, nil
}

// Close releases the stemmer.
func (t *StemmingTokenizer) Close() {
	t.stemmer.Close()
}

// foreignRunRegex matches runs of Latin letters, digits, punctuation,
// symbols and whitespace.
var foreignRunRegex = regexp.MustCompile(`[\p{Latin}\p{N}\p{P}\p{S}\s]+`)

// SegmentTokenizer tokenizes Chinese text. Latin letters, digits,
// punctuation and whitespace are replaced by a single space, the rest is cut
// into words with a dictionary segmenter, and words of one character are
// dropped.
type SegmentTokenizer struct {
	seg gse.Segmenter
}

// NewSegmentTokenizer loads the given dictionary files, or the embedded
// default dictionary when none are given.
func NewSegmentTokenizer(dicts ...string) (*SegmentTokenizer, error) {
	seg, err := gse.New(dicts...)
	if err != nil {
		return nil, err
	}
	return &SegmentTokenizer{seg: seg}, nil
}

func (t *SegmentTokenizer) Tokenize(text string) ([]string, error) {
	line := foreignRunRegex.ReplaceAllString(text, " ")
	words := t.seg.Cut(line, true)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if keep(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens, nil
}
