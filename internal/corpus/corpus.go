// Package corpus holds the static condition reference table. It is
// initialized once at startup and never mutated; any future corpus update
// mechanism would need its own versioned path.
package corpus

import "github.com/sandevgo/triagebot/internal/core"

var conditions = []core.Condition{
	{
		Name:            "Common Cold",
		Symptoms:        []string{"runny nose", "sneezing", "sore throat", "mild cough", "congestion", "mild fever", "fatigue"},
		Description:     "A viral infection of the upper respiratory tract.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Rest", "Stay hydrated", "Over-the-counter decongestants", "Throat lozenges"},
	},
	{
		Name:            "Influenza (Flu)",
		Symptoms:        []string{"high fever", "chills", "body aches", "muscle pain", "severe fatigue", "headache", "dry cough", "sore throat"},
		Description:     "A contagious respiratory illness caused by influenza viruses.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"Bed rest", "Plenty of fluids", "Antiviral medications (consult doctor)", "Pain relievers for fever"},
	},
	{
		Name:            "COVID-19",
		Symptoms:        []string{"fever", "dry cough", "shortness of breath", "loss of taste", "loss of smell", "fatigue", "body aches", "headache"},
		Description:     "A respiratory illness caused by the SARS-CoV-2 virus.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"Isolate immediately", "Consult healthcare provider", "Monitor oxygen levels", "Stay hydrated"},
	},
	{
		Name:            "Strep Throat",
		Symptoms:        []string{"severe sore throat", "difficulty swallowing", "fever", "swollen lymph nodes", "red tonsils", "white patches on throat"},
		Description:     "A bacterial infection causing throat inflammation.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"See a doctor for antibiotics", "Gargle with warm salt water", "Rest", "Avoid cold drinks"},
	},
	{
		Name:            "Pneumonia",
		Symptoms:        []string{"chest pain", "cough with mucus", "high fever", "shortness of breath", "chills", "sweating", "fatigue"},
		Description:     "Infection causing inflammation in the air sacs in one or both lungs.",
		Severity:        core.SeveritySevere,
		Recommendations: []string{"Seek medical attention immediately", "Antibiotics as prescribed", "Hospitalization may be required", "Oxygen therapy if needed"},
	},
	{
		Name:            "Gastroenteritis",
		Symptoms:        []string{"nausea", "vomiting", "diarrhea", "stomach cramps", "abdominal pain", "mild fever", "dehydration"},
		Description:     "Inflammation of the gastrointestinal tract, often caused by viruses or bacteria.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Stay hydrated with clear fluids", "BRAT diet (bananas, rice, applesauce, toast)", "Rest", "Oral rehydration salts"},
	},
	{
		Name:            "Urinary Tract Infection (UTI)",
		Symptoms:        []string{"burning urination", "frequent urination", "cloudy urine", "pelvic pain", "strong urine odor", "blood in urine"},
		Description:     "Infection in any part of the urinary system.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"See a doctor for antibiotics", "Drink plenty of water", "Avoid irritants like caffeine", "Urinate frequently"},
	},
	{
		Name:            "Migraine",
		Symptoms:        []string{"severe headache", "throbbing pain", "nausea", "vomiting", "light sensitivity", "sound sensitivity", "aura", "vision changes"},
		Description:     "A neurological condition causing intense, debilitating headaches.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"Rest in a dark, quiet room", "Pain relievers", "Triptans (consult doctor)", "Cold compress on forehead"},
	},
	{
		Name:            "Allergic Rhinitis",
		Symptoms:        []string{"sneezing", "runny nose", "itchy eyes", "watery eyes", "nasal congestion", "itchy throat", "postnasal drip"},
		Description:     "An allergic response causing inflammation in the nasal passages.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Antihistamines", "Avoid allergens", "Nasal sprays", "Keep windows closed during high pollen seasons"},
	},
	{
		Name:            "Asthma",
		Symptoms:        []string{"wheezing", "shortness of breath", "chest tightness", "coughing at night", "difficulty breathing", "rapid breathing"},
		Description:     "A condition in which airways narrow and swell, producing extra mucus.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"Use prescribed inhaler", "Avoid triggers", "See a pulmonologist", "Follow asthma action plan"},
	},
	{
		Name:            "Hypertension",
		Symptoms:        []string{"headache", "dizziness", "blurred vision", "chest pain", "shortness of breath", "nosebleeds", "flushing"},
		Description:     "A condition in which the force of blood against artery walls is too high.",
		Severity:        core.SeveritySevere,
		Recommendations: []string{"Monitor blood pressure regularly", "Reduce salt intake", "Exercise", "Consult a cardiologist", "Medication if prescribed"},
	},
	{
		Name:            "Type 2 Diabetes",
		Symptoms:        []string{"increased thirst", "frequent urination", "fatigue", "blurred vision", "slow healing wounds", "tingling hands", "weight loss"},
		Description:     "A chronic condition that affects the way the body processes blood sugar.",
		Severity:        core.SeveritySevere,
		Recommendations: []string{"Monitor blood sugar levels", "Dietary changes", "Regular exercise", "Consult an endocrinologist", "Medication as prescribed"},
	},
	{
		Name:            "Appendicitis",
		Symptoms:        []string{"severe abdominal pain", "pain around navel moving to lower right", "nausea", "vomiting", "fever", "loss of appetite", "rebound tenderness"},
		Description:     "Inflammation of the appendix, a medical emergency.",
		Severity:        core.SeveritySevere,
		Recommendations: []string{"Go to emergency room immediately", "Do not eat or drink", "Surgery typically required"},
	},
	{
		Name:            "Acid Reflux / GERD",
		Symptoms:        []string{"heartburn", "chest burning", "regurgitation", "difficulty swallowing", "chronic cough", "sour taste in mouth"},
		Description:     "A digestive disorder where stomach acid flows back into the esophagus.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Avoid trigger foods", "Eat smaller meals", "Don't lie down after eating", "Antacids or PPIs as prescribed"},
	},
	{
		Name:            "Chickenpox",
		Symptoms:        []string{"itchy rash", "red spots", "blisters", "fever", "fatigue", "loss of appetite", "headache"},
		Description:     "A highly contagious viral infection causing an itchy blister-like rash.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Isolate to prevent spread", "Calamine lotion for itching", "Antihistamines", "Avoid scratching blisters"},
	},
	{
		Name:            "Dengue Fever",
		Symptoms:        []string{"high fever", "severe headache", "pain behind eyes", "joint pain", "muscle pain", "rash", "mild bleeding", "fatigue"},
		Description:     "A mosquito-borne tropical disease caused by dengue viruses.",
		Severity:        core.SeveritySevere,
		Recommendations: []string{"Seek immediate medical care", "Stay hydrated", "Monitor platelet count", "Pain relievers (avoid aspirin/ibuprofen)"},
	},
	{
		Name:            "Conjunctivitis (Pink Eye)",
		Symptoms:        []string{"red eyes", "eye discharge", "itchy eyes", "watery eyes", "swollen eyelids", "crusty eyelashes in morning"},
		Description:     "Inflammation or infection of the outer membrane of the eyeball.",
		Severity:        core.SeverityMild,
		Recommendations: []string{"Antibiotic eye drops if bacterial", "Warm compress", "Avoid touching eyes", "Wash hands frequently"},
	},
	{
		Name:            "Anemia",
		Symptoms:        []string{"fatigue", "weakness", "pale skin", "shortness of breath", "dizziness", "cold hands and feet", "brittle nails", "headache"},
		Description:     "A condition where you lack enough healthy red blood cells to carry adequate oxygen to tissues.",
		Severity:        core.SeverityModerate,
		Recommendations: []string{"Iron-rich diet", "Iron supplements if prescribed", "Vitamin B12 supplements", "Consult a hematologist"},
	},
}

// All returns the shared condition table. Callers must treat it as read-only.
func All() []core.Condition {
	return conditions
}
