package catalog

import "github.com/agron-app/agron/internal/domain/models"

// UIText holds the localized interface strings served to clients.
var UIText = map[string]models.Localized{
	"selectLanguage": {
		models.LangTelugu:  "మీ భాషను ఎంచుకోండి",
		models.LangHindi:   "अपनी भाषा चुनें",
		models.LangTamil:   "உங்கள் மொழியைத் தேர்ந்தெடுக்கவும்",
		models.LangKannada: "ನಿಮ್ಮ ಭಾಷೆಯನ್ನು ಆಯ್ಕೆಮಾಡಿ",
		models.LangMarathi: "तुमची भाषा निवडा",
		models.LangEnglish: "Choose your language",
	},
	"selectCrop": {
		models.LangTelugu:  "మీ పంటను ఎంచుకోండి",
		models.LangHindi:   "अपनी फसल चुनें",
		models.LangTamil:   "உங்கள் பயிரைத் தேர்ந்தெடுக்கவும்",
		models.LangKannada: "ನಿಮ್ಮ ಬೆಳೆಯನ್ನು ಆಯ್ಕೆಮಾಡಿ",
		models.LangMarathi: "तुमचे पीक निवडा",
		models.LangEnglish: "Select your crop",
	},
	"selectLand": {
		models.LangTelugu:  "మీ భూమి పరిమాణం ఎంత?",
		models.LangHindi:   "आपकी जमीन कितनी है?",
		models.LangTamil:   "உங்கள் நிலம் எவ்வளவு?",
		models.LangKannada: "ನಿಮ್ಮ ಜಮೀನು ಎಷ್ಟು?",
		models.LangMarathi: "तुमची जमीन किती आहे?",
		models.LangEnglish: "How much land do you have?",
	},
	"yourSchemes": {
		models.LangTelugu:  "మీ పథకాలు",
		models.LangHindi:   "आपकी योजनाएं",
		models.LangTamil:   "உங்கள் திட்டங்கள்",
		models.LangKannada: "ನಿಮ್ಮ ಯೋಜನೆಗಳು",
		models.LangMarathi: "तुमच्या योजना",
		models.LangEnglish: "Your schemes",
	},
	"noSchemes": {
		models.LangTelugu:  "సరిపోలే పథకాలు లేవు",
		models.LangHindi:   "कोई मिलती-जुलती योजना नहीं",
		models.LangTamil:   "பொருந்தும் திட்டங்கள் இல்லை",
		models.LangKannada: "ಹೊಂದುವ ಯೋಜನೆಗಳಿಲ್ಲ",
		models.LangMarathi: "जुळणाऱ्या योजना नाहीत",
		models.LangEnglish: "No matching schemes",
	},
	"back": {
		models.LangTelugu:  "వెనుకకు",
		models.LangHindi:   "वापस",
		models.LangTamil:   "பின்",
		models.LangKannada: "ಹಿಂದೆ",
		models.LangMarathi: "मागे",
		models.LangEnglish: "Back",
	},
	"home": {
		models.LangTelugu:  "హోమ్",
		models.LangHindi:   "होम",
		models.LangTamil:   "முகப்பு",
		models.LangKannada: "ಮುಖಪುಟ",
		models.LangMarathi: "मुख्यपृष्ठ",
		models.LangEnglish: "Home",
	},
	"chatWelcome": {
		models.LangTelugu:  "నమస్కారం! నేను మీకు సహాయం చేయడానికి ఇక్కడ ఉన్నాను. ప్రభుత్వ పథకాల గురించి ఏదైనా అడగండి.",
		models.LangHindi:   "नमस्ते! मैं आपकी मदद के लिए यहाँ हूँ। सरकारी योजनाओं के बारे में कुछ भी पूछें।",
		models.LangTamil:   "வணக்கம்! நான் உங்களுக்கு உதவ இங்கே இருக்கிறேன். அரசு திட்டங்கள் பற்றி எதையும் கேளுங்கள்.",
		models.LangKannada: "ನಮಸ್ಕಾರ! ನಾನು ನಿಮಗೆ ಸಹಾಯ ಮಾಡಲು ಇಲ್ಲಿದ್ದೇನೆ. ಸರ್ಕಾರಿ ಯೋಜನೆಗಳ ಬಗ್ಗೆ ಏನಾದರೂ ಕೇಳಿ.",
		models.LangMarathi: "नमस्कार! मी तुम्हाला मदत करण्यासाठी येथे आहे. सरकारी योजनांबद्दल काहीही विचारा.",
		models.LangEnglish: "Hello! I am here to help you. Ask anything about government schemes.",
	},
	"chatPlaceholder": {
		models.LangTelugu:  "మీ ప్రశ్న అడగండి...",
		models.LangHindi:   "अपना सवाल पूछें...",
		models.LangTamil:   "உங்கள் கேள்வியைக் கேளுங்கள்...",
		models.LangKannada: "ನಿಮ್ಮ ಪ್ರಶ್ನೆಯನ್ನು ಕೇಳಿ...",
		models.LangMarathi: "तुमचा प्रश्न विचारा...",
		models.LangEnglish: "Ask your question...",
	},
}

var weatherText = map[string]models.Localized{
	"weather": {
		models.LangTelugu:  "వాతావరణం",
		models.LangHindi:   "मौसम",
		models.LangTamil:   "வானிலை",
		models.LangKannada: "ಹವಾಮಾನ",
		models.LangMarathi: "हवामान",
		models.LangEnglish: "Weather",
	},
	"today": {
		models.LangTelugu:  "ఈ రోజు",
		models.LangHindi:   "आज",
		models.LangTamil:   "இன்று",
		models.LangKannada: "ಇಂದು",
		models.LangMarathi: "आज",
		models.LangEnglish: "Today",
	},
	"humidity": {
		models.LangTelugu:  "తేమ",
		models.LangHindi:   "नमी",
		models.LangTamil:   "ஈரப்பதம்",
		models.LangKannada: "ತೇವಾಂಶ",
		models.LangMarathi: "आर्द्रता",
		models.LangEnglish: "Humidity",
	},
	"wind": {
		models.LangTelugu:  "గాలి",
		models.LangHindi:   "हवा",
		models.LangTamil:   "காற்று",
		models.LangKannada: "ಗಾಳಿ",
		models.LangMarathi: "वारा",
		models.LangEnglish: "Wind",
	},
}

// WeatherLabelsFor resolves the weather card captions for one language.
func WeatherLabelsFor(lang models.Language) models.WeatherLabels {
	return models.WeatherLabels{
		Weather:  weatherText["weather"].In(lang),
		Today:    weatherText["today"].In(lang),
		Humidity: weatherText["humidity"].In(lang),
		Wind:     weatherText["wind"].In(lang),
	}
}

// LocationName is the localized name of the forecast location.
var LocationName = models.Localized{
	models.LangTelugu:  "హైదరాబాద్",
	models.LangHindi:   "हैदराबाद",
	models.LangTamil:   "ஹைதராபாத்",
	models.LangKannada: "ಹೈದರಾಬಾದ್",
	models.LangMarathi: "हैदराबाद",
	models.LangEnglish: "Hyderabad",
}

// DayNames holds abbreviated weekday names, Sunday first, used by the
// forecast strip.
var DayNames = map[models.Language][]string{
	models.LangTelugu:  {"ఆది", "సోమ", "మంగళ", "బుధ", "గురు", "శుక్ర", "శని"},
	models.LangHindi:   {"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
	models.LangTamil:   {"ஞாயிறு", "திங்கள்", "செவ்வாய்", "புதன்", "வியாழன்", "வெள்ளி", "சனி"},
	models.LangKannada: {"ಭಾನು", "ಸೋಮ", "ಮಂಗಳ", "ಬುಧ", "ಗುರು", "ಶುಕ್ರ", "ಶನಿ"},
	models.LangMarathi: {"रवि", "सोम", "मंगळ", "बुध", "गुरु", "शुक्र", "शनि"},
	models.LangEnglish: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}
