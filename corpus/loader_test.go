package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	classifier "github.com/samuel/go-nbclassifier"
)

func writeGBK(t *testing.T, path, text string) {
	t.Helper()
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, b, 0o644))
}

func writeCorpus(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		writeGBK(t, filepath.Join(dir, "spam", strconv.Itoa(i)+".txt"), "代开发票"+strconv.Itoa(i))
		writeGBK(t, filepath.Join(dir, "ham", strconv.Itoa(i)+".txt"), "会议通知"+strconv.Itoa(i))
	}
}

func TestLayoutLoad(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, 3)

	docs, err := Layout{Dir: dir, SpamDir: "spam", HamDir: "ham", Count: 3, Encoding: "gb2312"}.Load()
	require.NoError(t, err)
	require.Len(t, docs, 6)

	assert.Equal(t, Document{Name: "spam/1.txt", Label: classifier.Spam, Body: "代开发票1"}, docs[0])
	assert.Equal(t, Document{Name: "ham/1.txt", Label: classifier.Ham, Body: "会议通知1"}, docs[1])
	assert.Equal(t, "spam/3.txt", docs[4].Name)
	assert.Equal(t, classifier.Ham, docs[5].Label)
}

func TestLayoutLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, 2)
	require.NoError(t, os.Remove(filepath.Join(dir, "ham", "2.txt")))

	docs, err := Layout{Dir: dir, SpamDir: "spam", HamDir: "ham", Count: 2, Encoding: "gbk"}.Load()
	assert.Nil(t, docs)
	assert.ErrorIs(t, err, ErrDocumentMissing)
	var missing *MissingDocumentError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(dir, "ham", "2.txt"), missing.Path)
}

func TestLayoutLoadUnknownEncoding(t *testing.T) {
	_, err := Layout{Dir: t.TempDir(), Count: 1, Encoding: "no-such-charset"}.Load()
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}

func TestReadFileReplacesMalformedBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	good, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("你好"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, append(append([]byte{}, good...), 0x81, 0x20, 'o', 'k'), 0o644))

	enc, err := Encoding("gb2312")
	require.NoError(t, err)
	text, err := ReadFile(path, enc)
	require.NoError(t, err)
	assert.Contains(t, text, "你好")
	assert.Contains(t, text, "ok")
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	writeCorpus(t, dir, 2)
	store := NewLocalStore()

	n, err := Import(store, Layout{Dir: dir, SpamDir: "spam", HamDir: "ham", Count: 2, Encoding: "gb2312"})
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	counts, err := store.Counts()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[classifier.Spam])
	assert.Equal(t, int64(2), counts[classifier.Ham])
}

func TestTokenize(t *testing.T) {
	docs := []Document{
		{Name: "a", Label: classifier.Spam, Body: "Buy NOW x"},
		{Name: "b", Label: classifier.Ham, Body: "see you at the meeting"},
	}
	out, err := Tokenize(docs, classifier.SimpleTokenizer)
	require.NoError(t, err)
	assert.Equal(t, []classifier.Document{
		{Name: "a", Label: classifier.Spam, Tokens: []string{"buy", "now"}},
		{Name: "b", Label: classifier.Ham, Tokens: []string{"see", "you", "at", "the", "meeting"}},
	}, out)
}
