package speech

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSplitText_Short(t *testing.T) {
	require.Nil(t, splitText("   ", maxChunkRunes))
	require.Equal(t, []string{"كلب يجلس على العشب"}, splitText(" كلب يجلس على العشب ", maxChunkRunes))
}

func TestSplitText_Punctuation(t *testing.T) {
	chunks := splitText("كلب، قطة؟ حصان. bird", maxChunkRunes)
	require.Equal(t, []string{"كلب،", "قطة؟", "حصان.", "bird"}, chunks)
}

func TestSplitText_LongSentenceKeepsWords(t *testing.T) {
	words := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		words = append(words, "كلمة")
	}
	text := strings.Join(words, " ")

	chunks := splitText(text, 20)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		require.LessOrEqual(t, utf8.RuneCountInString(c), 20)
	}
	require.Equal(t, strings.Fields(text), strings.Fields(strings.Join(chunks, " ")))
}

func TestSplitText_HugeWord(t *testing.T) {
	word := strings.Repeat("ب", 250)
	chunks := splitText(word, maxChunkRunes)
	require.Len(t, chunks, 3)
	require.Equal(t, 100, utf8.RuneCountInString(chunks[0]))
	require.Equal(t, 50, utf8.RuneCountInString(chunks[2]))
	require.Equal(t, word, strings.Join(chunks, ""))
}
