package core

import (
	"strings"

	"pulsenet-backend/pkg"
)

// ValidateDiagnosisRequest checks a decoded analysis request before any
// external call is made. Only shape and type constraints are enforced:
// no range clamping and no unit conversion.
func ValidateDiagnosisRequest(req pkg.DiagnosisRequest) error {
	if strings.TrimSpace(req.Patient.Name) == "" {
		return &ValidationError{Field: "patient.name", Reason: "must not be empty"}
	}
	if req.Patient.Age < 0 {
		return &ValidationError{Field: "patient.age", Reason: "must not be negative"}
	}
	if strings.TrimSpace(req.Patient.Gender) == "" {
		return &ValidationError{Field: "patient.gender", Reason: "must not be empty"}
	}
	if req.Patient.Weight != nil && *req.Patient.Weight <= 0 {
		return &ValidationError{Field: "patient.weight", Reason: "must be positive"}
	}
	if req.Vitals.BP.Systolic <= req.Vitals.BP.Diastolic {
		return &ValidationError{Field: "vitals.bp", Reason: "systolic must exceed diastolic"}
	}
	if req.Vitals.Pulse <= 0 {
		return &ValidationError{Field: "vitals.pulse", Reason: "must be positive"}
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		return &ValidationError{Field: "symptoms", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.DoctorID) == "" {
		return &ValidationError{Field: "doctorId", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.DoctorEmail) == "" {
		return &ValidationError{Field: "doctorEmail", Reason: "must not be empty"}
	}
	return nil
}

// ValidateChatRequest checks a chat message. Unknown language codes are
// accepted; the prompt builder falls back to English for them.
func ValidateChatRequest(req pkg.ChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return &ValidationError{Field: "message", Reason: "must not be empty"}
	}
	return nil
}
