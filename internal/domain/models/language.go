package models

// Language identifies one of the supported locales.
type Language string

const (
	LangTelugu  Language = "te"
	LangHindi   Language = "hi"
	LangTamil   Language = "ta"
	LangKannada Language = "kn"
	LangMarathi Language = "mr"
	LangEnglish Language = "en"
)

// DefaultLanguage is the language a fresh profile starts with, before the
// user makes an explicit choice.
const DefaultLanguage = LangEnglish

// SupportedLanguages lists every locale the application ships translations
// for, in display order.
var SupportedLanguages = []Language{
	LangTelugu,
	LangHindi,
	LangTamil,
	LangKannada,
	LangMarathi,
	LangEnglish,
}

// IsValid reports whether l belongs to the closed set of supported locales.
func (l Language) IsValid() bool {
	switch l {
	case LangTelugu, LangHindi, LangTamil, LangKannada, LangMarathi, LangEnglish:
		return true
	}
	return false
}

// EnglishName returns the language name used when instructing the assistant
// which language to answer in.
func (l Language) EnglishName() string {
	switch l {
	case LangTelugu:
		return "Telugu"
	case LangHindi:
		return "Hindi"
	case LangTamil:
		return "Tamil"
	case LangKannada:
		return "Kannada"
	case LangMarathi:
		return "Marathi"
	case LangEnglish:
		return "English"
	}
	return "Hindi"
}

// LanguageOption describes a selectable language for the language picker.
type LanguageOption struct {
	Code       Language `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName"`
	Flag       string   `json:"flag"`
}

// Localized is a per-language string table attached to a domain entity.
// Every supported language must have an entry; catalog validation enforces
// this at startup.
type Localized map[Language]string

// Complete reports whether the table carries a non-empty value for every
// supported language.
func (t Localized) Complete() bool {
	for _, lang := range SupportedLanguages {
		if t[lang] == "" {
			return false
		}
	}
	return true
}

// In resolves the table for the given language, falling back to English for
// an unknown code. Validated catalogs never hit the fallback for supported
// languages.
func (t Localized) In(lang Language) string {
	if v, ok := t[lang]; ok {
		return v
	}
	return t[LangEnglish]
}
