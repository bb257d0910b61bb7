package corpus

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	classifier "github.com/samuel/go-nbclassifier"
)

var (
	// ErrDocumentMissing is matched by MissingDocumentError.
	ErrDocumentMissing = stderrors.New("corpus: document missing")
	// ErrUnknownEncoding is returned for character encodings that cannot be resolved.
	ErrUnknownEncoding = stderrors.New("corpus: unknown encoding")
)

// MissingDocumentError is returned when a file the layout names does not exist.
type MissingDocumentError struct {
	Path string
}

func (e *MissingDocumentError) Error() string {
	return "corpus: document " + e.Path + " does not exist"
}

func (e *MissingDocumentError) Is(target error) bool {
	return target == ErrDocumentMissing
}

// Layout describes a corpus directory holding one sub-directory per class,
// each with files named 1.txt through Count.txt.
type Layout struct {
	Dir      string
	SpamDir  string
	HamDir   string
	Count    int
	Encoding string // any WHATWG encoding label; empty means utf-8
}

// Load reads every document the layout names, spam and ham interleaved by
// index. Any missing or unreadable file fails the whole load. Byte sequences
// that are invalid in the encoding are replaced, not reported.
func (l Layout) Load() ([]Document, error) {
	enc, err := Encoding(l.Encoding)
	if err != nil {
		return nil, err
	}
	docs := make([]Document, 0, 2*l.Count)
	for i := 1; i <= l.Count; i++ {
		for _, class := range []struct {
			dir   string
			label classifier.Label
		}{
			{l.SpamDir, classifier.Spam},
			{l.HamDir, classifier.Ham},
		} {
			name := filepath.Join(class.dir, strconv.Itoa(i)+".txt")
			body, err := ReadFile(filepath.Join(l.Dir, name), enc)
			if err != nil {
				return nil, err
			}
			docs = append(docs, Document{Name: filepath.ToSlash(name), Label: class.label, Body: body})
		}
	}
	return docs, nil
}

// Encoding resolves an encoding label such as "gb2312" or "utf-8".
func Encoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = "utf-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
	return enc, nil
}

// ReadFile reads path and decodes it with enc.
func ReadFile(path string, enc encoding.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &MissingDocumentError{Path: path}
		}
		return "", errors.Wrapf(err, "corpus: opening %s", path)
	}
	defer f.Close()
	b, err := io.ReadAll(transform.NewReader(f, enc.NewDecoder()))
	if err != nil {
		return "", errors.Wrapf(err, "corpus: reading %s", path)
	}
	return string(b), nil
}

// Import loads the layout into store.
func Import(store Store, l Layout) (int, error) {
	docs, err := l.Load()
	if err != nil {
		return 0, err
	}
	if err := store.AddDocuments(docs...); err != nil {
		return 0, err
	}
	return len(docs), nil
}
