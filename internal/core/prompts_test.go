package core

import (
	"strings"
	"testing"

	"pulsenet-backend/pkg"
)

func sampleRequest() pkg.DiagnosisRequest {
	return pkg.DiagnosisRequest{
		Language: "en",
		Patient:  pkg.PatientProfile{Name: "A", Age: 45, Gender: "M"},
		Vitals: pkg.Vitals{
			Temperature: 37.2,
			BP:          pkg.BloodPressure{Systolic: 120, Diastolic: 80},
			Pulse:       72,
		},
		Symptoms:    "cough",
		DoctorID:    "doc-1",
		DoctorEmail: "x@y.com",
	}
}

func TestBuildDiagnosisPrompt_Deterministic(t *testing.T) {
	a := BuildDiagnosisPrompt(sampleRequest())
	b := BuildDiagnosisPrompt(sampleRequest())
	if a != b {
		t.Fatalf("same request produced different prompts")
	}
}

func TestBuildDiagnosisPrompt_EmbedsRequestVerbatim(t *testing.T) {
	prompt := BuildDiagnosisPrompt(sampleRequest())
	for _, want := range []string{
		"Name: A",
		"Age: 45",
		"Gender: M",
		"Temperature: 37.2 °C",
		"Blood Pressure: 120/80 mmHg",
		"Pulse Rate: 72 bpm",
		"SYMPTOMS:\ncough",
		"Return ONLY valid JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildDiagnosisPrompt_ListsAllAgeBuckets(t *testing.T) {
	prompt := BuildDiagnosisPrompt(sampleRequest())
	for _, bucket := range []string{
		"Infant (0–1 years)",
		"Child (2–12 years)",
		"Adolescent (13–17 years)",
		"Adult (18–59 years)",
		"Geriatric (60+ years)",
	} {
		if !strings.Contains(prompt, bucket) {
			t.Fatalf("prompt missing age bucket %q", bucket)
		}
	}
}

func TestBuildDiagnosisPrompt_SpO2OnlyWhenPresent(t *testing.T) {
	req := sampleRequest()
	if strings.Contains(BuildDiagnosisPrompt(req), "SpO2") {
		t.Fatalf("SpO2 line present without a reading")
	}
	req.Vitals.SpO2 = "98%"
	if !strings.Contains(BuildDiagnosisPrompt(req), "SpO2: 98%") {
		t.Fatalf("SpO2 line missing when a reading is set")
	}
}

func TestLanguageName(t *testing.T) {
	cases := map[string]string{
		"en": "English",
		"hi": "Hindi",
		"bn": "Bengali",
		"ta": "Tamil",
		"te": "Telugu",
		"fr": "English", // unknown codes fall back
		"":   "English",
	}
	for code, want := range cases {
		if got := LanguageName(code); got != want {
			t.Fatalf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestBuildChatPrompt(t *testing.T) {
	prompt := BuildChatPrompt("What is a balanced diet?", "ta")
	if !strings.Contains(prompt, "Reply ONLY in Tamil.") {
		t.Fatalf("prompt missing language instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "USER MESSAGE: What is a balanced diet?") {
		t.Fatalf("prompt missing user message:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Do NOT diagnose or prescribe.") {
		t.Fatalf("prompt missing safety rules:\n%s", prompt)
	}
}
