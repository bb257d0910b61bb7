package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classifier "github.com/samuel/go-nbclassifier"
)

var testDocuments = []Document{
	{Name: "spam/1.txt", Label: classifier.Spam, Body: "buy now"},
	{Name: "ham/1.txt", Label: classifier.Ham, Body: "hello there"},
	{Name: "spam/2.txt", Label: classifier.Spam, Body: "free offer"},
}

// testStore exercises the Store contract against any implementation.
func testStore(t *testing.T, store Store) {
	docs, err := store.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, map[classifier.Label]int64{classifier.Ham: 0, classifier.Spam: 0}, counts)

	require.NoError(t, store.AddDocuments(testDocuments...))

	docs, err = store.Documents()
	require.NoError(t, err)
	assert.Equal(t, testDocuments, docs)

	counts, err = store.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[classifier.Spam])
	assert.Equal(t, int64(1), counts[classifier.Ham])

	// A batch containing a duplicate is rejected as a whole.
	err = store.AddDocuments(
		Document{Name: "ham/2.txt", Label: classifier.Ham, Body: "meeting"},
		Document{Name: "spam/1.txt", Label: classifier.Spam, Body: "again"},
	)
	assert.Equal(t, ErrDuplicateDocument("spam/1.txt"), err)

	err = store.AddDocuments(Document{Name: "x", Label: classifier.Label(7)})
	assert.ErrorIs(t, err, classifier.ErrInvalidLabel)

	docs, err = store.Documents()
	require.NoError(t, err)
	assert.Len(t, docs, len(testDocuments))

	// Same name under the other label is a different document.
	require.NoError(t, store.AddDocuments(Document{Name: "spam/1.txt", Label: classifier.Ham, Body: "x"}))
	docs, err = store.Documents()
	require.NoError(t, err)
	assert.Len(t, docs, len(testDocuments)+1)
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore())
}

func TestLocalStoreDuplicateWithinBatch(t *testing.T) {
	store := NewLocalStore()
	doc := Document{Name: "ham/1.txt", Label: classifier.Ham}
	assert.Equal(t, ErrDuplicateDocument("ham/1.txt"), store.AddDocuments(doc, doc))
	docs, err := store.Documents()
	require.NoError(t, err)
	assert.Empty(t, docs)
}
