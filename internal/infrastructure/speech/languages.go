package speech

import (
	"fmt"

	"vision-speech/internal/domain/entity"
)

// languages коды, которые принимает Google Translate TTS
var languages = map[string]string{
	"af": "Afrikaans", "am": "Amharic", "ar": "Arabic", "bg": "Bulgarian",
	"bn": "Bengali", "bs": "Bosnian", "ca": "Catalan", "cs": "Czech",
	"cy": "Welsh", "da": "Danish", "de": "German", "el": "Greek",
	"en": "English", "es": "Spanish", "et": "Estonian", "eu": "Basque",
	"fi": "Finnish", "fr": "French", "gl": "Galician", "gu": "Gujarati",
	"ha": "Hausa", "hi": "Hindi", "hr": "Croatian", "hu": "Hungarian",
	"id": "Indonesian", "is": "Icelandic", "it": "Italian", "iw": "Hebrew",
	"ja": "Japanese", "jw": "Javanese", "km": "Khmer", "kn": "Kannada",
	"ko": "Korean", "la": "Latin", "lt": "Lithuanian", "lv": "Latvian",
	"ml": "Malayalam", "mr": "Marathi", "ms": "Malay", "my": "Myanmar (Burmese)",
	"ne": "Nepali", "nl": "Dutch", "no": "Norwegian", "pa": "Punjabi",
	"pl": "Polish", "pt": "Portuguese", "ro": "Romanian", "ru": "Russian",
	"si": "Sinhala", "sk": "Slovak", "sq": "Albanian", "sr": "Serbian",
	"su": "Sundanese", "sv": "Swedish", "sw": "Swahili", "ta": "Tamil",
	"te": "Telugu", "th": "Thai", "tl": "Filipino", "tr": "Turkish",
	"uk": "Ukrainian", "ur": "Urdu", "vi": "Vietnamese", "yue": "Cantonese",
	"zh": "Chinese (Mandarin)", "zh-CN": "Chinese (Simplified)", "zh-TW": "Chinese (Traditional)",
}

// ValidateLanguage проверяет код языка синтеза
func ValidateLanguage(code string) error {
	if _, ok := languages[code]; !ok {
		return fmt.Errorf("%w: %q", entity.ErrUnsupportedLanguage, code)
	}
	return nil
}

