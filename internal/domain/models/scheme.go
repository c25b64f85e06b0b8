package models

// Eligibility is the pair of criteria sets a profile must satisfy. An empty
// set on either dimension means no one qualifies for the scheme.
type Eligibility struct {
	Crops     []CropType `json:"crops" bson:"crops"`
	LandSizes []LandSize `json:"landSizes" bson:"land_sizes"`
}

// AllowsCrop reports membership of c in the eligible crop set.
func (e Eligibility) AllowsCrop(c CropType) bool {
	for _, eligible := range e.Crops {
		if eligible == c {
			return true
		}
	}
	return false
}

// AllowsLandSize reports membership of s in the eligible land-size set.
func (e Eligibility) AllowsLandSize(s LandSize) bool {
	for _, eligible := range e.LandSizes {
		if eligible == s {
			return true
		}
	}
	return false
}

// Scheme is a government welfare program entry. Schemes are loaded once at
// startup and never mutated afterwards; the catalog's declaration order is
// the canonical presentation order.
type Scheme struct {
	ID               string      `bson:"_id"`
	Title            Localized   `bson:"title"`
	ShortDescription Localized   `bson:"short_description"`
	Benefit          string      `bson:"benefit"`
	Eligibility      Eligibility `bson:"eligibility"`
	VideoURL         string      `bson:"video_url,omitempty"`
	IsNew            bool        `bson:"is_new,omitempty"`
	IsUrgent         bool        `bson:"is_urgent,omitempty"`
}

// LocalizedScheme is the API view of a scheme, with text resolved to one
// language.
type LocalizedScheme struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
	VideoURL    string `json:"videoUrl,omitempty"`
	IsNew       bool   `json:"isNew,omitempty"`
	IsUrgent    bool   `json:"isUrgent,omitempty"`
}

// Localize resolves the scheme's text for the given language.
func (s Scheme) Localize(lang Language) LocalizedScheme {
	return LocalizedScheme{
		ID:          s.ID,
		Title:       s.Title.In(lang),
		Description: s.ShortDescription.In(lang),
		Benefit:     s.Benefit,
		VideoURL:    s.VideoURL,
		IsNew:       s.IsNew,
		IsUrgent:    s.IsUrgent,
	}
}
