package risk

import "riskscreen/internal/disease"

// Advice is one resolved recommendation set, grouped by category.
type Advice struct {
	Lifestyle  []string `json:"lifestyle"`
	Diet       []string `json:"diet"`
	Medical    []string `json:"medical"`
	Prevention []string `json:"prevention"`
}

// Recommendations resolves the static knowledge base for a (disease, tier)
// pair. It never fails: anything outside the 15 known combinations gets the
// generic fallback, since advice delivery must not block report generation.
func Recommendations(id disease.ID, tier Tier) Advice {
	if byTier, ok := adviceTable[id]; ok {
		if advice, ok := byTier[tier]; ok {
			return advice
		}
	}
	return fallbackAdvice
}

var fallbackAdvice = Advice{
	Lifestyle:  []string{"Maintain a healthy lifestyle"},
	Diet:       []string{"Follow a balanced diet"},
	Medical:    []string{"Regular health checkups"},
	Prevention: []string{"Stay informed about disease prevention"},
}

var adviceTable = map[disease.ID]map[Tier]Advice{
	disease.Diabetes: {
		TierHigh: {
			Lifestyle: []string{
				"Monitor blood glucose levels daily (target: 80-130 mg/dL fasting)",
				"Engage in 150 minutes of moderate aerobic activity per week",
				"Lose 5-10% of body weight if overweight",
				"Check feet daily for cuts, blisters, or infections",
				"Schedule regular eye examinations every 6-12 months",
			},
			Diet: []string{
				"Follow a low glycemic index diet (whole grains, legumes, vegetables)",
				"Limit refined carbohydrates and sugary foods",
				"Include fiber-rich foods (25-30g daily)",
				"Control portion sizes and eat at regular intervals",
				"Choose lean proteins (fish, chicken, tofu)",
				"Avoid sugary beverages and alcohol",
			},
			Medical: []string{
				"Consult an endocrinologist immediately",
				"Consider HbA1c test (target: <7%)",
				"Regular kidney function tests (creatinine, eGFR)",
				"Check lipid profile quarterly",
				"Monitor blood pressure (target: <140/90 mmHg)",
				"Discuss medication options (metformin, insulin)",
			},
			Prevention: []string{
				"Maintain healthy weight (BMI 18.5-24.9)",
				"Stay hydrated (8-10 glasses of water daily)",
				"Quit smoking completely",
				"Manage stress through yoga or meditation",
				"Get 7-8 hours of quality sleep nightly",
			},
		},
		TierMedium: {
			Lifestyle: []string{
				"Monitor blood glucose weekly",
				"Exercise 30 minutes daily (walking, cycling, swimming)",
				"Maintain a healthy weight",
				"Reduce sedentary time (stand every 30 minutes)",
			},
			Diet: []string{
				"Reduce sugar intake significantly",
				"Increase vegetable and fruit consumption (5 servings daily)",
				"Choose complex carbohydrates over simple sugars",
				"Include omega-3 fatty acids (salmon, walnuts, flaxseeds)",
			},
			Medical: []string{
				"Annual comprehensive health checkup",
				"Fasting glucose test every 6 months",
				"Blood pressure monitoring monthly",
				"Consult a nutritionist for meal planning",
			},
			Prevention: []string{
				"Limit processed foods",
				"Practice portion control",
				"Reduce stress levels",
				"Avoid crash diets",
			},
		},
		TierLow: {
			Lifestyle: []string{
				"Maintain regular physical activity (150 min/week)",
				"Keep a healthy weight",
				"Stay active throughout the day",
			},
			Diet: []string{
				"Continue balanced diet with whole foods",
				"Limit added sugars and processed foods",
				"Maintain consistent meal timing",
			},
			Medical: []string{
				"Annual health checkup",
				"Blood glucose screening every 1-2 years",
				"Regular BMI monitoring",
			},
			Prevention: []string{
				"Maintain healthy habits",
				"Stay informed about diabetes prevention",
				"Family history awareness",
			},
		},
	},
	disease.Heart: {
		TierHigh: {
			Lifestyle: []string{
				"NO smoking - quit immediately with medical support",
				"Exercise 30-45 minutes daily (cardiac rehabilitation program)",
				"Reduce stress through meditation and breathing exercises",
				"Monitor blood pressure twice daily",
				"Limit alcohol consumption (max 1 drink/day for women, 2 for men)",
			},
			Diet: []string{
				"Follow DASH diet (Dietary Approaches to Stop Hypertension)",
				"Reduce sodium intake (<1500mg/day)",
				"Increase potassium-rich foods (bananas, spinach, beans)",
				"Eat fatty fish 2-3 times weekly (omega-3)",
				"Limit saturated fats (<6% of total calories)",
				"Avoid trans fats completely",
				"Include nuts, seeds, and olive oil",
			},
			Medical: []string{
				"URGENT: Consult a cardiologist within 1 week",
				"Complete lipid panel (LDL target: <100 mg/dL)",
				"ECG and echocardiogram evaluation",
				"Stress test if recommended",
				"Consider statin therapy",
				"Daily aspirin (consult doctor first)",
				"Regular BP monitoring (target: <120/80 mmHg)",
			},
			Prevention: []string{
				"Maintain healthy weight (BMI <25)",
				"Control diabetes if present",
				"Manage stress actively",
				"Get adequate sleep (7-9 hours)",
				"Know CPR and warning signs of heart attack",
			},
		},
		TierMedium: {
			Lifestyle: []string{
				"Regular aerobic exercise (walking, jogging, cycling)",
				"Quit smoking if applicable",
				"Limit alcohol intake",
				"Stress management techniques",
			},
			Diet: []string{
				"Reduce sodium to <2300mg/day",
				"Increase fruits and vegetables",
				"Choose whole grains over refined grains",
				"Limit red meat consumption",
			},
			Medical: []string{
				"Annual cardiovascular screening",
				"Monitor cholesterol levels (every 6 months)",
				"Regular blood pressure checks",
				"Consult doctor about preventive measures",
			},
			Prevention: []string{
				"Maintain healthy lifestyle",
				"Regular health monitoring",
				"Family history assessment",
				"Weight management",
			},
		},
		TierLow: {
			Lifestyle: []string{
				"Continue regular exercise routine",
				"Maintain non-smoking status",
				"Manage stress effectively",
			},
			Diet: []string{
				"Balanced heart-healthy diet",
				"Moderate sodium intake",
				"Regular consumption of fruits and vegetables",
			},
			Medical: []string{
				"Annual health checkup",
				"Cholesterol screening every 3-5 years",
				"Blood pressure monitoring",
			},
			Prevention: []string{
				"Maintain healthy weight",
				"Stay active",
				"Avoid smoking",
				"Limit alcohol",
			},
		},
	},
	disease.Liver: {
		TierHigh: {
			Lifestyle: []string{
				"STOP alcohol consumption immediately",
				"Avoid all hepatotoxic substances",
				"Get vaccinated for Hepatitis A and B",
				"Regular gentle exercise (avoid overexertion)",
				"Maintain personal hygiene strictly",
			},
			Diet: []string{
				"Low-fat, high-protein diet",
				"Avoid raw or undercooked seafood",
				"Limit salt intake (<1500mg/day)",
				"Include liver-friendly foods (leafy greens, berries, nuts)",
				"Drink plenty of water (2-3 liters daily)",
				"Avoid processed and fried foods",
				"Consider coffee (2-3 cups daily - shown to be beneficial)",
			},
			Medical: []string{
				"URGENT: See a hepatologist/gastroenterologist immediately",
				"Liver function tests (ALT, AST, bilirubin)",
				"Abdominal ultrasound or FibroScan",
				"Hepatitis screening (A, B, C)",
				"Consider liver biopsy if recommended",
				"Medication review (avoid NSAIDs, acetaminophen)",
				"Regular monitoring every 3 months",
			},
			Prevention: []string{
				"Avoid exposure to toxins and chemicals",
				"Never share needles or personal items",
				"Practice safe hygiene",
				"Weight management if obese",
				"Control diabetes and cholesterol",
			},
		},
		TierMedium: {
			Lifestyle: []string{
				"Limit alcohol consumption significantly",
				"Regular moderate exercise",
				"Avoid unnecessary medications",
				"Maintain healthy weight",
			},
			Diet: []string{
				"Reduce fatty foods",
				"Increase fiber intake",
				"Include antioxidant-rich foods",
				"Limit processed foods",
			},
			Medical: []string{
				"Liver function tests every 6 months",
				"Annual hepatitis screening",
				"Consult doctor about liver health",
				"Review medications with physician",
			},
			Prevention: []string{
				"Moderate alcohol or abstain",
				"Healthy diet",
				"Regular exercise",
				"Avoid hepatotoxic substances",
			},
		},
		TierLow: {
			Lifestyle: []string{
				"Maintain moderate alcohol consumption or abstain",
				"Regular exercise",
				"Healthy weight maintenance",
			},
			Diet: []string{
				"Balanced diet with vegetables and fruits",
				"Moderate fat intake",
				"Adequate hydration",
			},
			Medical: []string{
				"Routine health checkups",
				"Liver function screening as needed",
				"Hepatitis vaccination if not done",
			},
			Prevention: []string{
				"Continue healthy habits",
				"Limit alcohol",
				"Avoid hepatotoxic medications",
			},
		},
	},
	disease.Kidney: {
		TierHigh: {
			Lifestyle: []string{
				"Monitor blood pressure strictly (target: <130/80)",
				"Regular gentle exercise (walking, swimming)",
				"Quit smoking immediately",
				"Limit strenuous physical activity",
				"Stay well-hydrated unless fluid restriction advised",
			},
			Diet: []string{
				"Low-protein diet (0.6-0.8g/kg body weight)",
				"Restrict sodium (<2000mg/day)",
				"Limit potassium (avoid bananas, oranges, tomatoes)",
				"Restrict phosphorus (limit dairy, nuts, beans)",
				"Avoid NSAIDs and nephrotoxic medications",
				"Monitor fluid intake if recommended",
				"Choose kidney-friendly foods (cabbage, bell peppers, onions)",
			},
			Medical: []string{
				"URGENT: Consult a nephrologist immediately",
				"Kidney function tests (creatinine, eGFR, BUN)",
				"Urinalysis for protein and blood",
				"Renal ultrasound",
				"Monitor for anemia (CBC)",
				"Bone health assessment (calcium, phosphorus, PTH)",
				"Consider ACE inhibitors or ARBs",
				"Regular dialysis if eGFR <15",
			},
			Prevention: []string{
				"Control blood sugar if diabetic (HbA1c <7%)",
				"Manage hypertension aggressively",
				"Avoid nephrotoxic drugs",
				"Regular kidney function monitoring",
				"Consider kidney transplant evaluation if appropriate",
			},
		},
		TierMedium: {
			Lifestyle: []string{
				"Regular exercise",
				"Monitor blood pressure",
				"Maintain healthy weight",
				"Adequate hydration",
			},
			Diet: []string{
				"Moderate protein intake",
				"Reduce sodium consumption",
				"Limit processed foods",
				"Balanced mineral intake",
			},
			Medical: []string{
				"Kidney function tests annually",
				"Blood pressure monitoring",
				"Urinalysis yearly",
				"Consult doctor about kidney health",
			},
			Prevention: []string{
				"Control diabetes and hypertension",
				"Avoid excessive NSAIDs",
				"Stay hydrated",
				"Regular health screenings",
			},
		},
		TierLow: {
			Lifestyle: []string{
				"Maintain regular exercise",
				"Healthy weight management",
				"Adequate hydration",
			},
			Diet: []string{
				"Balanced diet",
				"Moderate sodium intake",
				"Adequate protein",
			},
			Medical: []string{
				"Routine health checkups",
				"Periodic kidney function screening",
				"Blood pressure monitoring",
			},
			Prevention: []string{
				"Continue healthy lifestyle",
				"Monitor blood pressure",
				"Control blood sugar",
				"Avoid nephrotoxic substances",
			},
		},
	},
	disease.Stroke: {
		TierHigh: {
			Lifestyle: []string{
				"IMMEDIATE: Know FAST warning signs (Face, Arms, Speech, Time)",
				"Control blood pressure strictly (<120/80)",
				"Quit smoking immediately",
				"Limit alcohol (max 1-2 drinks/day)",
				"Regular moderate exercise (30 min daily)",
				"Reduce stress through relaxation techniques",
			},
			Diet: []string{
				"DASH or Mediterranean diet",
				"Reduce sodium drastically (<1500mg/day)",
				"Increase fruits and vegetables (8-10 servings)",
				"Omega-3 rich foods (salmon, sardines, walnuts)",
				"Limit saturated fats and cholesterol",
				"Avoid trans fats completely",
				"Include whole grains and legumes",
			},
			Medical: []string{
				"URGENT: See neurologist and cardiologist",
				"Carotid artery ultrasound",
				"Brain MRI/CT scan",
				"Complete cardiovascular workup",
				"Antiplatelet therapy (aspirin/clopidogrel)",
				"Anticoagulation if atrial fibrillation present",
				"Statin therapy for cholesterol",
				"Blood pressure medication adjustment",
				"Regular monitoring every 3 months",
			},
			Prevention: []string{
				"Control all risk factors aggressively",
				"Diabetes management (HbA1c <7%)",
				"Maintain healthy weight",
				"Treat atrial fibrillation if present",
				"Emergency action plan in place",
				"Family education on stroke signs",
			},
		},
		TierMedium: {
			Lifestyle: []string{
				"Regular aerobic exercise",
				"Blood pressure monitoring",
				"Stress management",
				"Quit smoking if applicable",
			},
			Diet: []string{
				"Heart-healthy diet",
				"Reduce sodium intake",
				"Increase fruits and vegetables",
				"Limit saturated fats",
			},
			Medical: []string{
				"Annual cardiovascular screening",
				"Blood pressure and cholesterol monitoring",
				"Consult doctor about stroke prevention",
				"Consider antiplatelet therapy if recommended",
			},
			Prevention: []string{
				"Control hypertension and diabetes",
				"Maintain healthy lifestyle",
				"Regular health checkups",
				"Know stroke warning signs",
			},
		},
		TierLow: {
			Lifestyle: []string{
				"Maintain regular exercise",
				"Healthy lifestyle habits",
				"Stress management",
			},
			Diet: []string{
				"Balanced heart-healthy diet",
				"Moderate sodium intake",
				"Regular fruit and vegetable consumption",
			},
			Medical: []string{
				"Routine health screenings",
				"Blood pressure monitoring",
				"Cholesterol checks",
			},
			Prevention: []string{
				"Continue healthy habits",
				"Maintain healthy weight",
				"Avoid smoking",
				"Limit alcohol",
			},
		},
	},
}
