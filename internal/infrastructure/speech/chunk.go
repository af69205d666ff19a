package speech

import (
	"strings"
	"unicode/utf8"
)

// maxChunkRunes ограничение Google TTS на длину одного запроса
const maxChunkRunes = 100

// sentenceEnds знаки, после которых допустимо разрезать текст, включая арабские
const sentenceEnds = ".!?;:,…\n،؛؟۔"

// splitText режет текст на куски не длиннее limit рун: сначала по знакам
// препинания, затем по пробелам, а слишком длинные слова режутся посимвольно.
func splitText(text string, limit int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	chunks := make([]string, 0, 1)
	for _, sentence := range splitSentences(text) {
		chunks = append(chunks, splitWords(sentence, limit)...)
	}
	return chunks
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(sentenceEnds, r) {
			flush()
		}
	}
	flush()

	return sentences
}

func splitWords(sentence string, limit int) []string {
	if utf8.RuneCountInString(sentence) <= limit {
		return []string{sentence}
	}

	var chunks []string
	current := ""
	flush := func() {
		if current != "" {
			chunks = append(chunks, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(sentence) {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case wordLen > limit:
			flush()
			chunks = append(chunks, splitRunes(word, limit)...)
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+wordLen <= limit:
			current += " " + word
		default:
			flush()
			current = word
		}
	}
	flush()

	return chunks
}

func splitRunes(word string, limit int) []string {
	runes := []rune(word)
	parts := make([]string, 0, len(runes)/limit+1)
	for len(runes) > limit {
		parts = append(parts, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
