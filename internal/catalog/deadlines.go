package catalog

import "github.com/agron-app/agron/internal/domain/models"

var embeddedDeadlines = []models.SchemeDeadline{
	{
		ID: "pm-kisan-installment",
		Name: models.Localized{
			models.LangEnglish: "PM-KISAN Installment",
			models.LangHindi:   "पीएम-किसान किस्त",
			models.LangTelugu:  "పీఎం-కిసాన్ వాయిదా",
			models.LangTamil:   "பிஎம்-கிசான் தவணை",
			models.LangKannada: "ಪಿಎಂ-ಕಿಸಾನ್ ಕಂತು",
			models.LangMarathi: "पीएम-किसान हप्ता",
		},
		Status:   models.DeadlineOpen,
		DaysLeft: 45,
	},
	{
		ID: "crop-insurance-window",
		Name: models.Localized{
			models.LangEnglish: "Crop Insurance Scheme",
			models.LangHindi:   "फसल बीमा योजना",
			models.LangTelugu:  "పంట బీమా పథకం",
			models.LangTamil:   "பயிர் காப்பீட்டு திட்டம்",
			models.LangKannada: "ಬೆಳೆ ವಿಮೆ ಯೋಜನೆ",
			models.LangMarathi: "पीक विमा योजना",
		},
		Status:   models.DeadlineClosingSoon,
		DaysLeft: 7,
	},
	{
		ID: "tractor-subsidy",
		Name: models.Localized{
			models.LangEnglish: "Tractor Subsidy Application",
			models.LangHindi:   "ट्रैक्टर सब्सिडी आवेदन",
			models.LangTelugu:  "ట్రాక్టర్ సబ్సిడీ దరఖాస్తు",
			models.LangTamil:   "டிராக்டர் மானியம் விண்ணப்பம்",
			models.LangKannada: "ಟ್ರ್ಯಾಕ್ಟರ್ ಸಬ್ಸಿಡಿ ಅರ್ಜಿ",
			models.LangMarathi: "ट्रॅक्टर अनुदान अर्ज",
		},
		Status:   models.DeadlineUrgent,
		DaysLeft: 2,
	},
	{
		ID: "soil-health-card",
		Name: models.Localized{
			models.LangEnglish: "Soil Health Card",
			models.LangHindi:   "मृदा स्वास्थ्य कार्ड",
			models.LangTelugu:  "నేల ఆరోగ్య కార్డు",
			models.LangTamil:   "மண் ஆரோக்கிய அட்டை",
			models.LangKannada: "ಮಣ್ಣಿನ ಆರೋಗ್ಯ ಕಾರ್ಡ್",
			models.LangMarathi: "माती आरोग्य कार्ड",
		},
		Status:   models.DeadlineOpen,
		DaysLeft: 60,
	},
	{
		ID: "drip-irrigation-subsidy",
		Name: models.Localized{
			models.LangEnglish: "Drip Irrigation Subsidy",
			models.LangHindi:   "ड्रिप सिंचाई सब्सिडी",
			models.LangTelugu:  "బిందు సేద్యం సబ్సిడీ",
			models.LangTamil:   "சொட்டு நீர்ப்பாசன மானியம்",
			models.LangKannada: "ಹನಿ ನೀರಾವರಿ ಸಬ್ಸಿಡಿ",
			models.LangMarathi: "ठिबक सिंचन अनुदान",
		},
		Status:   models.DeadlineClosingSoon,
		DaysLeft: 5,
	},
}
