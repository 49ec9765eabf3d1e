package models

// Language is a two-letter site language code.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// ParseLanguage validates a wire-level language code.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageES, LanguageEN:
		return Language(s), true
	default:
		return "", false
	}
}

// Text is a bilingual string pair.
type Text struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// In returns the string for the given language, falling back to Spanish.
func (t Text) In(lang Language) string {
	if lang == LanguageEN {
		return t.EN
	}
	return t.ES
}
