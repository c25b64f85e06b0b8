package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageIsValid(t *testing.T) {
	for _, lang := range SupportedLanguages {
		assert.Truef(t, lang.IsValid(), "%s", lang)
	}
	assert.False(t, Language("fr").IsValid())
	assert.False(t, Language("").IsValid())
}

func TestEnglishName(t *testing.T) {
	assert.Equal(t, "Telugu", LangTelugu.EnglishName())
	assert.Equal(t, "English", LangEnglish.EnglishName())
	assert.Equal(t, "Hindi", Language("xx").EnglishName())
}

func TestLocalizedComplete(t *testing.T) {
	full := Localized{}
	for _, lang := range SupportedLanguages {
		full[lang] = "x"
	}
	assert.True(t, full.Complete())

	delete(full, LangMarathi)
	assert.False(t, full.Complete())

	full[LangMarathi] = ""
	assert.False(t, full.Complete(), "an empty value counts as missing")
}

func TestLocalizedIn(t *testing.T) {
	table := Localized{LangEnglish: "hello", LangHindi: "नमस्ते"}

	assert.Equal(t, "नमस्ते", table.In(LangHindi))
	assert.Equal(t, "hello", table.In(Language("xx")), "unknown codes fall back to English")
	assert.Equal(t, "hello", table.In(LangTamil), "missing entries fall back to English")
}

func TestFarmerProfileLifecycle(t *testing.T) {
	p := NewFarmerProfile()
	assert.Equal(t, DefaultLanguage, p.Language)
	assert.False(t, p.Complete())

	crop := CropCotton
	size := LandLarge
	p.Crop = &crop
	p.LandSize = &size
	p.Language = LangKannada
	assert.True(t, p.Complete())

	p.Reset()
	assert.False(t, p.Complete())
	assert.Nil(t, p.Crop)
	assert.Nil(t, p.LandSize)
	assert.Equal(t, LangKannada, p.Language, "reset keeps the language")
}
