package models

// CropType identifies a farming crop category.
type CropType string

const (
	CropRice       CropType = "rice"
	CropWheat      CropType = "wheat"
	CropCotton     CropType = "cotton"
	CropSugarcane  CropType = "sugarcane"
	CropVegetables CropType = "vegetables"
	CropFruits     CropType = "fruits"
)

// IsValid reports whether c belongs to the closed crop set.
func (c CropType) IsValid() bool {
	switch c {
	case CropRice, CropWheat, CropCotton, CropSugarcane, CropVegetables, CropFruits:
		return true
	}
	return false
}

// CropOption is a selectable crop with its localized label.
type CropOption struct {
	ID     CropType  `json:"id"`
	Icon   string    `json:"icon"`
	Labels Localized `json:"-"`
}

// LandSize identifies a land holding bracket.
type LandSize string

const (
	LandSmall  LandSize = "small"
	LandMedium LandSize = "medium"
	LandLarge  LandSize = "large"
)

// IsValid reports whether s belongs to the closed land-size set.
func (s LandSize) IsValid() bool {
	switch s {
	case LandSmall, LandMedium, LandLarge:
		return true
	}
	return false
}

// LandOption is a selectable land bracket with its display acreage and
// localized label.
type LandOption struct {
	ID     LandSize  `json:"id"`
	Acres  string    `json:"acres"`
	Icon   string    `json:"icon"`
	Labels Localized `json:"-"`
}
