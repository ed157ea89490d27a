package core

// prompts.go holds the instruction templates sent to the completion
// service. Keeping them in one file makes the wording easy to tweak
// without touching the pipeline code. Both builders are pure functions:
// the same request always renders the same prompt byte for byte.

import (
	"fmt"

	"pulsenet-backend/pkg"
)

// diagnosisPromptTemplate embeds demographics, vitals and symptoms, then a
// literal example of the exact JSON object the reply must match. Free-text
// fields are interpolated verbatim; the JSON braces are plain template text
// since only the %-verbs are substitution points.
const diagnosisPromptTemplate = `You are a Clinical Decision Support Medical AI assisting licensed physicians.
All medication dosages MUST be adjusted based on patient age category and safety standards.

PATIENT DETAILS:
Name: %s
Age: %d
Gender: %s

AGE CATEGORIZATION (MANDATORY):
- Infant (0–1 years)
- Child (2–12 years)
- Adolescent (13–17 years)
- Adult (18–59 years)
- Geriatric (60+ years)

VITAL SIGNS:
Temperature: %v °C
Blood Pressure: %d/%d mmHg
Pulse Rate: %d bpm%s

SYMPTOMS:
%s

OUTPUT FORMAT:
Return ONLY valid JSON in the structure below. Do not include markdown or conversational text.

{
  "ageCategory": "",
  "diagnosis": "",
  "confidence": "",
  "referralNeeded": true,
  "treatments": [
    {
      "medication": "",
      "dosage": "",
      "route": "",
      "frequency": "",
      "duration": "",
      "ageSpecificRationale": ""
    }
  ],
  "drugInteractions": [
    {
      "substances": "",
      "riskLevel": "",
      "clinicalExplanation": "",
      "recommendation": ""
    }
  ],
  "clinicalNotes": ""
}`

// chatPromptTemplate constrains the assistant to healthcare topics and the
// requested language, and forbids diagnosing or prescribing.
const chatPromptTemplate = `You are PulseNet AI, a healthcare-only virtual assistant.
Reply ONLY in %s.
USER MESSAGE: %s

MEDICAL SAFETY RULES:
- Provide general health info.
- Do NOT diagnose or prescribe.
- Remind the user to see a doctor.`

// languageNames maps the supported language codes to the display name used
// in the chat prompt.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"bn": "Bengali",
	"ta": "Tamil",
	"te": "Telugu",
}

// LanguageName resolves a language code to its display name, defaulting to
// English for anything unrecognized.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// BuildDiagnosisPrompt renders the analysis instruction block for a
// validated request.
func BuildDiagnosisPrompt(req pkg.DiagnosisRequest) string {
	spo2 := ""
	if req.Vitals.SpO2 != "" {
		spo2 = "\nSpO2: " + req.Vitals.SpO2
	}
	return fmt.Sprintf(diagnosisPromptTemplate,
		req.Patient.Name,
		req.Patient.Age,
		req.Patient.Gender,
		req.Vitals.Temperature,
		req.Vitals.BP.Systolic,
		req.Vitals.BP.Diastolic,
		req.Vitals.Pulse,
		spo2,
		req.Symptoms,
	)
}

// BuildChatPrompt renders the assistant instruction block for a chat
// message in the given language code.
func BuildChatPrompt(message, language string) string {
	return fmt.Sprintf(chatPromptTemplate, LanguageName(language), message)
}
