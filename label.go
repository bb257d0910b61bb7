package classifier

import "strconv"

// Label tags a document with one of the two classes.
type Label int

const (
	Ham  Label = 0
	Spam Label = 1
)

// Valid reports whether l is Ham or Spam.
func (l Label) Valid() bool {
	return l == Ham || l == Spam
}

func (l Label) String() string {
	switch l {
	case Ham:
		return "ham"
	case Spam:
		return "spam"
	}
	return "label(" + strconv.Itoa(int(l)) + ")"
}

// Document is a labeled, tokenized document.
type Document struct {
	Name   string
	Label  Label
	Tokens []string
}
