package models

// FarmerProfile is the per-session selection state. Language is always set;
// crop and land size stay nil until the farmer picks them.
type FarmerProfile struct {
	Language Language  `json:"language"`
	Crop     *CropType `json:"crop,omitempty"`
	LandSize *LandSize `json:"landSize,omitempty"`
}

// NewFarmerProfile returns a fresh profile with the explicit default
// language and no selections.
func NewFarmerProfile() FarmerProfile {
	return FarmerProfile{Language: DefaultLanguage}
}

// Complete reports whether both matching keys have been chosen.
func (p FarmerProfile) Complete() bool {
	return p.Crop != nil && p.LandSize != nil
}

// Reset discards crop and land size while keeping the language choice.
func (p *FarmerProfile) Reset() {
	p.Crop = nil
	p.LandSize = nil
}
