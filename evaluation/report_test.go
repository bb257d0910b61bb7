package evaluation

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	classifier "github.com/samuel/go-nbclassifier"
)

func testResult() *Result {
	return &Result{
		RunID:      uuid.MustParse("6f1c1a52-4a0e-4c54-9d0b-0c7b1bb5e5a1"),
		Mode:       classifier.Count,
		Vocabulary: 12,
		Train:      []int{0, 1, 2},
		Test:       []int{3, 4},
		SpamPrior:  0.5,
		Misclassified: []Misclassification{
			{Index: 4, Name: "ham/2.txt", Label: classifier.Ham, Predicted: classifier.Spam, Tokens: []string{"发票", "优惠"}},
		},
		ErrorRate: 50,
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter("text", &buf)
	require.NoError(t, err)
	require.NoError(t, r.Report(testResult()))

	out := buf.String()
	assert.Contains(t, out, "run 6f1c1a52-4a0e-4c54-9d0b-0c7b1bb5e5a1 (count, 12 features, 3 train, 2 held out)")
	assert.Contains(t, out, "misclassified #4 ham/2.txt: ham classified as spam")
	assert.Contains(t, out, "tokens: 发票 优惠")
	assert.Contains(t, out, "error rate: 50.00%")
}

func TestTextReporterNoErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextReporter{W: &buf}).Report(&Result{Misclassified: []Misclassification{}}))
	assert.Contains(t, buf.String(), "error rate: 0.00%")
	assert.NotContains(t, buf.String(), "misclassified")
}

func TestYAMLReporter(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewReporter("yaml", &buf)
	require.NoError(t, err)
	require.NoError(t, r.Report(testResult()))

	var got yamlResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "6f1c1a52-4a0e-4c54-9d0b-0c7b1bb5e5a1", got.RunID)
	assert.Equal(t, "count", got.Mode)
	assert.Equal(t, 3, got.Train)
	assert.Equal(t, []int{3, 4}, got.Test)
	assert.Equal(t, 50.0, got.ErrorRate)
	require.Len(t, got.Misclassified, 1)
	assert.Equal(t, "ham", got.Misclassified[0].Label)
	assert.Equal(t, "spam", got.Misclassified[0].Predicted)
}

func TestNewReporterUnknownFormat(t *testing.T) {
	_, err := NewReporter("xml", &bytes.Buffer{})
	assert.Error(t, err)
}
