package corpus

import (
	"fmt"

	classifier "github.com/samuel/go-nbclassifier"
)

// ErrDuplicateDocument is the error returned when a document with the same
// name and label is already stored.
type ErrDuplicateDocument string

func (e ErrDuplicateDocument) Error() string {
	return "corpus: document " + string(e) + " already exists"
}

// Document is a raw labeled document as read from a corpus source.
type Document struct {
	Name  string
	Label classifier.Label
	Body  string
}

// Store is the storage interface for a labeled corpus
type Store interface {
	// AddDocuments stores docs atomically: either all are added or none.
	AddDocuments(docs ...Document) error
	// Documents returns every stored document in insertion order.
	Documents() ([]Document, error)
	// Counts returns the number of documents per label.
	Counts() (map[classifier.Label]int64, error)
}

type docKey struct {
	name  string
	label classifier.Label
}

type localStore struct {
	documents []Document
	seen      map[docKey]struct{}
}

// NewLocalStore returns a new in-memory store
func NewLocalStore() Store {
	return &localStore{
		documents: make([]Document, 0),
		seen:      make(map[docKey]struct{}),
	}
}

func (ls *localStore) AddDocuments(docs ...Document) error {
	batch := make(map[docKey]struct{}, len(docs))
	for _, doc := range docs {
		if err := validate(doc); err != nil {
			return err
		}
		k := docKey{doc.Name, doc.Label}
		if _, ok := ls.seen[k]; ok {
			return ErrDuplicateDocument(doc.Name)
		}
		if _, ok := batch[k]; ok {
			return ErrDuplicateDocument(doc.Name)
		}
		batch[k] = struct{}{}
	}
	for _, doc := range docs {
		ls.seen[docKey{doc.Name, doc.Label}] = struct{}{}
		ls.documents = append(ls.documents, doc)
	}
	return nil
}

func (ls *localStore) Documents() ([]Document, error) {
	docs := make([]Document, len(ls.documents))
	copy(docs, ls.documents)
	return docs, nil
}

func (ls *localStore) Counts() (map[classifier.Label]int64, error) {
	counts := map[classifier.Label]int64{classifier.Ham: 0, classifier.Spam: 0}
	for _, doc := range ls.documents {
		counts[doc.Label]++
	}
	return counts, nil
}

func validate(doc Document) error {
	if !doc.Label.Valid() {
		return fmt.Errorf("%w: %d for document %s", classifier.ErrInvalidLabel, int(doc.Label), doc.Name)
	}
	return nil
}
