package classifier

import (
	"regexp"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTokenizer(t *testing.T) {
	tokens, err := SimpleTokenizer.Tokenize("Hello a World  hello I 是 你好")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "world", "hello", "你好"}, tokens)

	tokens, err = SimpleTokenizer.Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestStemmingTokenizer(t *testing.T) {
	tok, err := NewStemmingTokenizer("english")
	require.NoError(t, err)
	defer tok.Close()

	tokens, err := tok.Tokenize("Running, JUMPS! connected: a x")
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "jump", "connect"}, tokens)

	_, err = NewStemmingTokenizer("klingon")
	assert.Error(t, err)
}

var latinOrDigit = regexp.MustCompile(`[A-Za-z0-9]`)

func TestSegmentTokenizer(t *testing.T) {
	tok, err := NewSegmentTokenizer()
	require.NoError(t, err)

	text := "【限时优惠】我们公司提供发票，代开各种增值税发票！联系电话12345678 QQ：ABC。\n请尽快联系我们。"
	tokens, err := tok.Tokenize(text)
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	for _, token := range tokens {
		assert.Greater(t, utf8.RuneCountInString(token), 1, token)
		assert.False(t, latinOrDigit.MatchString(token), token)
		assert.NotContains(t, token, " ")
	}
	assert.Contains(t, tokens, "发票")

	tokens, err = tok.Tokenize("only latin text 123 ...")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
