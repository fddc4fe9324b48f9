package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"ocr-translator/internal/config"
)

// AutoDetectName is the label shown for the "auto" source language.
const AutoDetectName = "Auto-Detect"

// SourceLanguageCodes lists the codes offered as the translation source, in display order.
var SourceLanguageCodes = []string{config.AutoDetectLang, "en", "hi", "fr", "es"}

// TargetLanguageCodes lists the codes offered as the translation target, in display order.
var TargetLanguageCodes = []string{"en", "hi", "fr", "es"}

var englishNames = display.English.Languages()

// GetLanguageName returns the English name for a language code, e.g. "hi" -> "Hindi".
// "auto" maps to AutoDetectName. Unparseable codes are returned unchanged.
func GetLanguageName(code string) string {
	if code == config.AutoDetectLang {
		return AutoDetectName
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := englishNames.Name(tag); name != "" {
		return name
	}
	return code
}

// IsValidSourceLanguage checks if a language code is a valid source language.
func IsValidSourceLanguage(code string) bool {
	return contains(SourceLanguageCodes, code)
}

// IsValidTargetLanguage checks if a language code is a valid target language.
func IsValidTargetLanguage(code string) bool {
	return contains(TargetLanguageCodes, code)
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
