// Package i18n resolves display strings for a key + language pair with
// English fallback. The table mirrors the product's bilingual string set.
package i18n

import "ayuraksha-service/internal/pkg/constvars"

// Value holds the per-language variants of one display string.
type Value map[string]string

// Resolve returns the display string for key in the requested language.
// Lookup order: exact language hit, English, the supplied fallback, the key
// itself. Missing keys never error.
func Resolve(key, language, fallback string) string {
	value, ok := translations[key]
	if !ok {
		if fallback != "" {
			return fallback
		}
		return key
	}

	if text, ok := value[language]; ok && text != "" {
		return text
	}
	if text, ok := value[constvars.DefaultLanguage]; ok && text != "" {
		return text
	}
	if fallback != "" {
		return fallback
	}
	return key
}

// Pick flattens a pair of localized variants to one language, used for the
// alert view models whose translations ride along with the data.
func Pick(english, hindi, language string) string {
	if language == constvars.LanguageHindi && hindi != "" {
		return hindi
	}
	return english
}

// Languages lists the supported display languages, default first.
func Languages() []string {
	return []string{constvars.DefaultLanguage, constvars.LanguageHindi}
}

// IsSupported reports whether language is a known display language.
func IsSupported(language string) bool {
	for _, known := range Languages() {
		if known == language {
			return true
		}
	}
	return false
}
