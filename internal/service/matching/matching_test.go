package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agron-app/agron/internal/domain/models"
)

func schemeFixture(id string, crops []models.CropType, sizes []models.LandSize) models.Scheme {
	return models.Scheme{
		ID:          id,
		Eligibility: models.Eligibility{Crops: crops, LandSizes: sizes},
	}
}

func profileFixture(crop models.CropType, size models.LandSize) models.FarmerProfile {
	return models.FarmerProfile{
		Language: models.LangEnglish,
		Crop:     &crop,
		LandSize: &size,
	}
}

func TestMatchIncompleteProfile(t *testing.T) {
	schemes := []models.Scheme{
		schemeFixture("a", []models.CropType{models.CropRice}, []models.LandSize{models.LandSmall}),
	}

	crop := models.CropRice
	size := models.LandSmall

	tests := []struct {
		name    string
		profile models.FarmerProfile
	}{
		{"nothing chosen", models.FarmerProfile{Language: models.LangHindi}},
		{"only crop", models.FarmerProfile{Language: models.LangHindi, Crop: &crop}},
		{"only land size", models.FarmerProfile{Language: models.LangHindi, LandSize: &size}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Match(tt.profile, schemes))
		})
	}
}

func TestMatchRequiresBothCriteria(t *testing.T) {
	schemes := []models.Scheme{
		schemeFixture("crop-only", []models.CropType{models.CropRice}, []models.LandSize{models.LandLarge}),
		schemeFixture("land-only", []models.CropType{models.CropWheat}, []models.LandSize{models.LandSmall}),
		schemeFixture("both", []models.CropType{models.CropRice, models.CropWheat}, []models.LandSize{models.LandSmall, models.LandMedium}),
	}

	matched := Match(profileFixture(models.CropRice, models.LandSmall), schemes)

	if assert.Len(t, matched, 1) {
		assert.Equal(t, "both", matched[0].ID)
	}
}

func TestMatchPreservesDeclarationOrder(t *testing.T) {
	all := []models.CropType{models.CropRice}
	sizes := []models.LandSize{models.LandSmall}
	schemes := []models.Scheme{
		schemeFixture("first", all, sizes),
		schemeFixture("second", []models.CropType{models.CropWheat}, sizes),
		schemeFixture("third", all, sizes),
		schemeFixture("fourth", all, sizes),
	}

	profile := profileFixture(models.CropRice, models.LandSmall)

	for i := 0; i < 5; i++ {
		matched := Match(profile, schemes)
		ids := make([]string, 0, len(matched))
		for _, s := range matched {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, []string{"first", "third", "fourth"}, ids)
	}
}

func TestMatchEmptyEligibilitySetMatchesNobody(t *testing.T) {
	schemes := []models.Scheme{
		schemeFixture("no-crops", nil, []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge}),
		schemeFixture("no-sizes", []models.CropType{models.CropRice, models.CropWheat}, nil),
	}

	for _, crop := range []models.CropType{models.CropRice, models.CropWheat, models.CropFruits} {
		for _, size := range []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge} {
			assert.Empty(t, Match(profileFixture(crop, size), schemes))
		}
	}
}
