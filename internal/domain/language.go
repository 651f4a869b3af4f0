package domain

// Language selects which side of a bilingual field pair is displayed.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "jp"
)

// ParseLanguage maps arbitrary client input onto a supported language.
// Anything that is not Japanese renders English.
func ParseLanguage(s string) Language {
	if s == string(LanguageJapanese) {
		return LanguageJapanese
	}
	return LanguageEnglish
}

// Resolve applies the bilingual fallback rule for a single field pair:
// the translated value is used only when the active language is Japanese
// and a non-empty translation exists. Every localized view goes through
// this one function so the rule cannot drift between entities.
func (l Language) Resolve(primary, translated string) string {
	if l == LanguageJapanese && translated != "" {
		return translated
	}
	return primary
}
