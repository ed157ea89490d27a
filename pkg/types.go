package pkg

import "go.mongodb.org/mongo-driver/bson/primitive"

// PatientProfile holds the demographics embedded in an analysis request.
// Weight is optional; the prompt does not depend on it.
type PatientProfile struct {
	Name   string   `json:"name" bson:"name"`
	Age    int      `json:"age" bson:"age"`
	Gender string   `json:"gender" bson:"gender"`
	Weight *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

// BloodPressure is a structured systolic/diastolic reading in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic" bson:"systolic"`
	Diastolic int `json:"diastolic" bson:"diastolic"`
}

// Vitals are the measurements taken at intake. SpO2 is optional free text
// (e.g. "98%") because not every clinic records it.
type Vitals struct {
	Temperature float64       `json:"temperature" bson:"temperature"`
	BP          BloodPressure `json:"bp" bson:"bp"`
	Pulse       int           `json:"pulse" bson:"pulse"`
	SpO2        string        `json:"spo2,omitempty" bson:"spo2,omitempty"`
}

// DiagnosisRequest is the body of POST /api/analyze. It is request-scoped:
// constructed from one inbound call, discarded after the response, and
// embedded whole into the persisted record.
type DiagnosisRequest struct {
	Language    string         `json:"language" bson:"language"`
	Patient     PatientProfile `json:"patient" bson:"patient"`
	Vitals      Vitals         `json:"vitals" bson:"vitals"`
	Symptoms    string         `json:"symptoms" bson:"symptoms"`
	DoctorID    string         `json:"doctorId" bson:"doctorId"`
	DoctorEmail string         `json:"doctorEmail" bson:"doctorEmail"`
}

// Treatment is one entry of the treatment plan returned by the model.
type Treatment struct {
	Medication           string `json:"medication" bson:"medication"`
	Dosage               string `json:"dosage" bson:"dosage"`
	Route                string `json:"route" bson:"route"`
	Frequency            string `json:"frequency" bson:"frequency"`
	Duration             string `json:"duration" bson:"duration"`
	AgeSpecificRationale string `json:"ageSpecificRationale" bson:"ageSpecificRationale"`
}

// DrugInteraction flags a risky combination among the suggested medications.
type DrugInteraction struct {
	Substances          string `json:"substances" bson:"substances"`
	RiskLevel           string `json:"riskLevel" bson:"riskLevel"`
	ClinicalExplanation string `json:"clinicalExplanation" bson:"clinicalExplanation"`
	Recommendation      string `json:"recommendation" bson:"recommendation"`
}

// DiagnosisResult is the typed form of the completion service's JSON reply.
// It is only ever produced by parsing that reply, never hand-constructed.
// Confidence is a string ("high"/"medium"/"low"): the prompt asks the model
// to fill a string slot and we do not reinterpret it.
type DiagnosisResult struct {
	AgeCategory      string            `json:"ageCategory,omitempty" bson:"ageCategory,omitempty"`
	Diagnosis        string            `json:"diagnosis" bson:"diagnosis"`
	Confidence       string            `json:"confidence" bson:"confidence"`
	ReferralNeeded   bool              `json:"referralNeeded" bson:"referralNeeded"`
	Treatments       []Treatment       `json:"treatments" bson:"treatments"`
	DrugInteractions []DrugInteraction `json:"drugInteractions,omitempty" bson:"drugInteractions,omitempty"`
	ClinicalNotes    string            `json:"clinicalNotes,omitempty" bson:"clinicalNotes,omitempty"`
}

// ChatRequest is the body of POST /api/common-chat.
type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// ChatReply is always returned with status 200; on internal failure the
// error text is embedded in Reply rather than surfaced as an HTTP error.
type ChatReply struct {
	Reply string `json:"reply"`
}

// PatientRecord is the append-only document written after a successful
// analysis. Once inserted it is owned by the store; this system never
// mutates or deletes it. Timestamp is a UTC ISO-8601 string so the
// descending sort used by the history query orders correctly as text.
type PatientRecord struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	DoctorID        string             `json:"doctorId" bson:"doctorId"`
	DoctorEmail     string             `json:"doctorEmail" bson:"doctorEmail"`
	PatientInfo     DiagnosisRequest   `json:"patient_info" bson:"patient_info"`
	DiagnosisResult DiagnosisResult    `json:"diagnosis_result" bson:"diagnosis_result"`
	Timestamp       string             `json:"timestamp" bson:"timestamp"`
}
