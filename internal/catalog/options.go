package catalog

import "github.com/agron-app/agron/internal/domain/models"

// Languages lists the selectable locales in picker order.
var Languages = []models.LanguageOption{
	{Code: models.LangTelugu, Name: "Telugu", NativeName: "తెలుగు", Flag: "🇮🇳"},
	{Code: models.LangHindi, Name: "Hindi", NativeName: "हिंदी", Flag: "🇮🇳"},
	{Code: models.LangTamil, Name: "Tamil", NativeName: "தமிழ்", Flag: "🇮🇳"},
	{Code: models.LangKannada, Name: "Kannada", NativeName: "ಕನ್ನಡ", Flag: "🇮🇳"},
	{Code: models.LangMarathi, Name: "Marathi", NativeName: "मराठी", Flag: "🇮🇳"},
	{Code: models.LangEnglish, Name: "English", NativeName: "English", Flag: "🇬🇧"},
}

// Crops lists the selectable crop categories.
var Crops = []models.CropOption{
	{
		ID:   models.CropRice,
		Icon: "🌾",
		Labels: models.Localized{
			models.LangTelugu:  "వరి",
			models.LangHindi:   "धान",
			models.LangTamil:   "நெல்",
			models.LangKannada: "ಭತ್ತ",
			models.LangMarathi: "भात",
			models.LangEnglish: "Rice",
		},
	},
	{
		ID:   models.CropWheat,
		Icon: "🌾",
		Labels: models.Localized{
			models.LangTelugu:  "గోధుమ",
			models.LangHindi:   "गेहूं",
			models.LangTamil:   "கோதுமை",
			models.LangKannada: "ಗೋಧಿ",
			models.LangMarathi: "गहू",
			models.LangEnglish: "Wheat",
		},
	},
	{
		ID:   models.CropCotton,
		Icon: "☁️",
		Labels: models.Localized{
			models.LangTelugu:  "పత్తి",
			models.LangHindi:   "कपास",
			models.LangTamil:   "பருத்தி",
			models.LangKannada: "ಹತ್ತಿ",
			models.LangMarathi: "कापूस",
			models.LangEnglish: "Cotton",
		},
	},
	{
		ID:   models.CropSugarcane,
		Icon: "🎋",
		Labels: models.Localized{
			models.LangTelugu:  "చెరకు",
			models.LangHindi:   "गन्ना",
			models.LangTamil:   "கரும்பு",
			models.LangKannada: "ಕಬ್ಬು",
			models.LangMarathi: "ऊस",
			models.LangEnglish: "Sugarcane",
		},
	},
	{
		ID:   models.CropVegetables,
		Icon: "🥬",
		Labels: models.Localized{
			models.LangTelugu:  "కూరగాయలు",
			models.LangHindi:   "सब्जियां",
			models.LangTamil:   "காய்கறிகள்",
			models.LangKannada: "ತರಕಾರಿಗಳು",
			models.LangMarathi: "भाज्या",
			models.LangEnglish: "Vegetables",
		},
	},
	{
		ID:   models.CropFruits,
		Icon: "🍎",
		Labels: models.Localized{
			models.LangTelugu:  "పండ్లు",
			models.LangHindi:   "फल",
			models.LangTamil:   "பழங்கள்",
			models.LangKannada: "ಹಣ್ಣುಗಳು",
			models.LangMarathi: "फळे",
			models.LangEnglish: "Fruits",
		},
	},
}

// LandSizes lists the selectable land brackets with their display acreage.
var LandSizes = []models.LandOption{
	{
		ID:    models.LandSmall,
		Acres: "0–2",
		Icon:  "🏡",
		Labels: models.Localized{
			models.LangTelugu:  "చిన్నది",
			models.LangHindi:   "छोटी",
			models.LangTamil:   "சிறியது",
			models.LangKannada: "ಚಿಕ್ಕದು",
			models.LangMarathi: "लहान",
			models.LangEnglish: "Small",
		},
	},
	{
		ID:    models.LandMedium,
		Acres: "2–5",
		Icon:  "🏞️",
		Labels: models.Localized{
			models.LangTelugu:  "మధ్యస్థం",
			models.LangHindi:   "मध्यम",
			models.LangTamil:   "நடுத்தரம்",
			models.LangKannada: "ಮಧ್ಯಮ",
			models.LangMarathi: "मध्यम",
			models.LangEnglish: "Medium",
		},
	},
	{
		ID:    models.LandLarge,
		Acres: "5+",
		Icon:  "🌄",
		Labels: models.Localized{
			models.LangTelugu:  "పెద్దది",
			models.LangHindi:   "बड़ी",
			models.LangTamil:   "பெரியது",
			models.LangKannada: "ದೊಡ್ಡದು",
			models.LangMarathi: "मोठी",
			models.LangEnglish: "Large",
		},
	},
}

// CropOptionByID returns the option for a crop, if defined.
func CropOptionByID(id models.CropType) (models.CropOption, bool) {
	for _, opt := range Crops {
		if opt.ID == id {
			return opt, true
		}
	}
	return models.CropOption{}, false
}

// LandOptionByID returns the option for a land bracket, if defined.
func LandOptionByID(id models.LandSize) (models.LandOption, bool) {
	for _, opt := range LandSizes {
		if opt.ID == id {
			return opt, true
		}
	}
	return models.LandOption{}, false
}
