package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agron-app/agron/internal/domain/models"
)

func completeLocalized(text string) models.Localized {
	l := make(models.Localized, len(models.SupportedLanguages))
	for _, lang := range models.SupportedLanguages {
		l[lang] = text
	}
	return l
}

func TestEmbeddedCatalogIsValid(t *testing.T) {
	cat := Embedded()
	require.NoError(t, cat.Validate())
	assert.NotEmpty(t, cat.Schemes)
	assert.NotEmpty(t, cat.Deadlines)
}

func TestValidateRejectsEmptySchemeID(t *testing.T) {
	cat := &Catalog{Schemes: []models.Scheme{{
		Title:            completeLocalized("t"),
		ShortDescription: completeLocalized("d"),
	}}}
	err := cat.Validate()
	assert.ErrorContains(t, err, "empty id")
}

func TestValidateRejectsDuplicateSchemeID(t *testing.T) {
	scheme := models.Scheme{
		ID:               "pm-kisan",
		Title:            completeLocalized("t"),
		ShortDescription: completeLocalized("d"),
	}
	cat := &Catalog{Schemes: []models.Scheme{scheme, scheme}}
	err := cat.Validate()
	assert.ErrorContains(t, err, "duplicate scheme id")
}

func TestValidateRejectsMissingTranslation(t *testing.T) {
	title := completeLocalized("t")
	delete(title, models.LangKannada)
	cat := &Catalog{Schemes: []models.Scheme{{
		ID:               "partial",
		Title:            title,
		ShortDescription: completeLocalized("d"),
	}}}
	err := cat.Validate()
	assert.ErrorContains(t, err, "title missing a language")
}

func TestValidateRejectsIncompleteDeadlineName(t *testing.T) {
	name := completeLocalized("n")
	delete(name, models.LangTamil)
	cat := &Catalog{Deadlines: []models.SchemeDeadline{{ID: "d1", Name: name}}}
	err := cat.Validate()
	assert.ErrorContains(t, err, "name missing a language")
}

func TestOptionLookups(t *testing.T) {
	crop, ok := CropOptionByID(models.CropRice)
	require.True(t, ok)
	assert.Equal(t, models.CropRice, crop.ID)

	_, ok = CropOptionByID(models.CropType("barley"))
	assert.False(t, ok)

	land, ok := LandOptionByID(models.LandMedium)
	require.True(t, ok)
	assert.Equal(t, models.LandMedium, land.ID)

	_, ok = LandOptionByID(models.LandSize("huge"))
	assert.False(t, ok)
}

func TestUITextCoversEveryLanguage(t *testing.T) {
	for key, text := range UIText {
		assert.Truef(t, text.Complete(), "ui text %q missing a language", key)
	}
	for _, lang := range models.SupportedLanguages {
		labels := WeatherLabelsFor(lang)
		assert.NotEmpty(t, labels.Humidity, "weather labels missing for %s", lang)
		assert.NotEmpty(t, LocationName.In(lang))
	}
}
