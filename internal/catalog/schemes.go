package catalog

import "github.com/agron-app/agron/internal/domain/models"

var embeddedSchemes = []models.Scheme{
	{
		ID: "pm-kisan",
		Title: models.Localized{
			models.LangEnglish: "PM-KISAN Samman Nidhi",
			models.LangHindi:   "पीएम-किसान सम्मान निधि",
			models.LangTelugu:  "పీఎం-కిసాన్ సమ్మాన్ నిధి",
			models.LangTamil:   "பிஎம்-கிசான் சம்மான் நிதி",
			models.LangKannada: "ಪಿಎಂ-ಕಿಸಾನ್ ಸಮ್ಮಾನ್ ನಿಧಿ",
			models.LangMarathi: "पीएम-किसान सन्मान निधी",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "₹6,000 per year paid directly to your bank account in three installments.",
			models.LangHindi:   "₹6,000 प्रति वर्ष तीन किस्तों में सीधे आपके बैंक खाते में।",
			models.LangTelugu:  "సంవత్సరానికి ₹6,000 మూడు వాయిదాలలో నేరుగా మీ బ్యాంకు ఖాతాలోకి.",
			models.LangTamil:   "ஆண்டுக்கு ₹6,000 மூன்று தவணைகளில் நேரடியாக உங்கள் வங்கி கணக்கில்.",
			models.LangKannada: "ವರ್ಷಕ್ಕೆ ₹6,000 ಮೂರು ಕಂತುಗಳಲ್ಲಿ ನೇರವಾಗಿ ನಿಮ್ಮ ಬ್ಯಾಂಕ್ ಖಾತೆಗೆ.",
			models.LangMarathi: "वर्षाला ₹6,000 तीन हप्त्यांत थेट तुमच्या बँक खात्यात.",
		},
		Benefit: "₹6,000 / year",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropRice, models.CropWheat, models.CropCotton,
				models.CropSugarcane, models.CropVegetables, models.CropFruits,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium},
		},
		VideoURL: "https://www.youtube.com/watch?v=8B3kH0xQ5nM",
	},
	{
		ID: "crop-insurance",
		Title: models.Localized{
			models.LangEnglish: "Crop Insurance Scheme",
			models.LangHindi:   "फसल बीमा योजना",
			models.LangTelugu:  "పంట బీమా పథకం",
			models.LangTamil:   "பயிர் காப்பீட்டு திட்டம்",
			models.LangKannada: "ಬೆಳೆ ವಿಮೆ ಯೋಜನೆ",
			models.LangMarathi: "पीक विमा योजना",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "Low-premium insurance that pays you if your crop is damaged by weather or pests.",
			models.LangHindi:   "कम प्रीमियम वाला बीमा जो मौसम या कीटों से फसल खराब होने पर पैसा देता है।",
			models.LangTelugu:  "వాతావరణం లేదా పురుగుల వల్ల పంట దెబ్బతింటే డబ్బు చెల్లించే తక్కువ ప్రీమియం బీమా.",
			models.LangTamil:   "வானிலை அல்லது பூச்சிகளால் பயிர் சேதமானால் பணம் தரும் குறைந்த பிரீமியம் காப்பீடு.",
			models.LangKannada: "ಹವಾಮಾನ ಅಥವಾ ಕೀಟಗಳಿಂದ ಬೆಳೆ ಹಾನಿಯಾದರೆ ಹಣ ನೀಡುವ ಕಡಿಮೆ ಪ್ರೀಮಿಯಂ ವಿಮೆ.",
			models.LangMarathi: "हवामान किंवा किडीमुळे पीक खराब झाल्यास पैसे देणारा कमी हप्त्याचा विमा.",
		},
		Benefit: "Cover up to ₹2,00,000",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropRice, models.CropWheat, models.CropCotton, models.CropSugarcane,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge},
		},
		IsUrgent: true,
	},
	{
		ID: "soil-health-card",
		Title: models.Localized{
			models.LangEnglish: "Soil Health Card",
			models.LangHindi:   "मृदा स्वास्थ्य कार्ड",
			models.LangTelugu:  "నేల ఆరోగ్య కార్డు",
			models.LangTamil:   "மண் ஆரோக்கிய அட்டை",
			models.LangKannada: "ಮಣ್ಣಿನ ಆರೋಗ್ಯ ಕಾರ್ಡ್",
			models.LangMarathi: "माती आरोग्य कार्ड",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "Free soil testing with advice on which fertilizer your field actually needs.",
			models.LangHindi:   "मुफ्त मिट्टी जांच और सलाह कि आपके खेत को कौन सी खाद चाहिए।",
			models.LangTelugu:  "ఉచిత నేల పరీక్ష, మీ పొలానికి ఏ ఎరువు అవసరమో సలహా.",
			models.LangTamil:   "இலவச மண் பரிசோதனை, உங்கள் வயலுக்கு எந்த உரம் தேவை என்ற ஆலோசனை.",
			models.LangKannada: "ಉಚಿತ ಮಣ್ಣು ಪರೀಕ್ಷೆ, ನಿಮ್ಮ ಹೊಲಕ್ಕೆ ಯಾವ ಗೊಬ್ಬರ ಬೇಕು ಎಂಬ ಸಲಹೆ.",
			models.LangMarathi: "मोफत माती तपासणी आणि तुमच्या शेताला कोणते खत हवे याचा सल्ला.",
		},
		Benefit: "Free soil test",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropRice, models.CropWheat, models.CropCotton,
				models.CropSugarcane, models.CropVegetables, models.CropFruits,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge},
		},
		IsNew: true,
	},
	{
		ID: "drip-irrigation",
		Title: models.Localized{
			models.LangEnglish: "Drip Irrigation Subsidy",
			models.LangHindi:   "ड्रिप सिंचाई सब्सिडी",
			models.LangTelugu:  "బిందు సేద్యం సబ్సిడీ",
			models.LangTamil:   "சொட்டு நீர்ப்பாசன மானியம்",
			models.LangKannada: "ಹನಿ ನೀರಾವರಿ ಸಬ್ಸಿಡಿ",
			models.LangMarathi: "ठिबक सिंचन अनुदान",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "Government pays most of the cost of drip pipes so you save water and money.",
			models.LangHindi:   "ड्रिप पाइप की अधिकांश लागत सरकार देती है, पानी और पैसा दोनों बचता है।",
			models.LangTelugu:  "డ్రిప్ పైపుల ఖర్చులో ఎక్కువ భాగం ప్రభుత్వం చెల్లిస్తుంది, నీరు డబ్బు ఆదా.",
			models.LangTamil:   "சொட்டு குழாய் செலவில் பெரும்பகுதியை அரசு தருகிறது, தண்ணீரும் பணமும் மிச்சம்.",
			models.LangKannada: "ಹನಿ ಪೈಪ್ ವೆಚ್ಚದ ಹೆಚ್ಚಿನ ಭಾಗವನ್ನು ಸರ್ಕಾರ ನೀಡುತ್ತದೆ, ನೀರು ಹಣ ಉಳಿತಾಯ.",
			models.LangMarathi: "ठिबक पाईपच्या खर्चाचा मोठा भाग सरकार देते, पाणी आणि पैसे वाचतात.",
		},
		Benefit: "Up to 90% subsidy",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropSugarcane, models.CropVegetables, models.CropFruits,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium},
		},
	},
	{
		ID: "kisan-credit-card",
		Title: models.Localized{
			models.LangEnglish: "Kisan Credit Card",
			models.LangHindi:   "किसान क्रेडिट कार्ड",
			models.LangTelugu:  "కిసాన్ క్రెడిట్ కార్డ్",
			models.LangTamil:   "கிசான் கடன் அட்டை",
			models.LangKannada: "ಕಿಸಾನ್ ಕ್ರೆಡಿಟ್ ಕಾರ್ಡ್",
			models.LangMarathi: "किसान क्रेडिट कार्ड",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "Easy farm loan up to ₹3,00,000 at only 4% interest for seeds and inputs.",
			models.LangHindi:   "बीज और खाद के लिए सिर्फ 4% ब्याज पर ₹3,00,000 तक का आसान कर्ज।",
			models.LangTelugu:  "విత్తనాలు ఎరువుల కోసం కేవలం 4% వడ్డీతో ₹3,00,000 వరకు సులభ రుణం.",
			models.LangTamil:   "விதை உரங்களுக்கு வெறும் 4% வட்டியில் ₹3,00,000 வரை எளிய கடன்.",
			models.LangKannada: "ಬೀಜ ಗೊಬ್ಬರಕ್ಕೆ ಕೇವಲ 4% ಬಡ್ಡಿಯಲ್ಲಿ ₹3,00,000 ವರೆಗೆ ಸುಲಭ ಸಾಲ.",
			models.LangMarathi: "बियाणे व खतासाठी फक्त 4% व्याजाने ₹3,00,000 पर्यंत सोपे कर्ज.",
		},
		Benefit: "Loan up to ₹3,00,000 at 4%",
		Eligibility: models.Eligibility{
			Crops: []models.CropType{
				models.CropRice, models.CropWheat, models.CropCotton,
				models.CropSugarcane, models.CropVegetables, models.CropFruits,
			},
			LandSizes: []models.LandSize{models.LandSmall, models.LandMedium, models.LandLarge},
		},
	},
	{
		ID: "organic-farming",
		Title: models.Localized{
			models.LangEnglish: "Organic Farming Support",
			models.LangHindi:   "जैविक खेती सहायता",
			models.LangTelugu:  "సేంద్రియ వ్యవసాయ సహాయం",
			models.LangTamil:   "இயற்கை விவசாய உதவி",
			models.LangKannada: "ಸಾವಯವ ಕೃಷಿ ನೆರವು",
			models.LangMarathi: "सेंद्रिय शेती मदत",
		},
		ShortDescription: models.Localized{
			models.LangEnglish: "₹50,000 per hectare over three years to switch to chemical-free farming.",
			models.LangHindi:   "रसायन मुक्त खेती अपनाने के लिए तीन साल में ₹50,000 प्रति हेक्टेयर।",
			models.LangTelugu:  "రసాయన రహిత వ్యవసాయానికి మారడానికి మూడేళ్లలో హెక్టారుకు ₹50,000.",
			models.LangTamil:   "ரசாயனமற்ற விவசாயத்திற்கு மாற மூன்று ஆண்டுகளில் ஹெக்டேருக்கு ₹50,000.",
			models.LangKannada: "ರಾಸಾಯನಿಕ ಮುಕ್ತ ಕೃಷಿಗೆ ಬದಲಾಗಲು ಮೂರು ವರ್ಷದಲ್ಲಿ ಹೆಕ್ಟೇರಿಗೆ ₹50,000.",
			models.LangMarathi: "रसायनमुक्त शेतीकडे वळण्यासाठी तीन वर्षांत हेक्टरी ₹50,000.",
		},
		Benefit: "₹50,000 / hectare",
		Eligibility: models.Eligibility{
			Crops:     []models.CropType{models.CropVegetables, models.CropFruits},
			LandSizes: []models.LandSize{models.LandMedium, models.LandLarge},
		},
		IsNew: true,
	},
}
