package core

import (
	"context"
	"time"

	"pulsenet-backend/internal/llm"
	"pulsenet-backend/internal/logger"
	"pulsenet-backend/pkg"
)

// RecordStore is the persistence sink as the pipeline sees it: independent
// single-document appends and a doctor-scoped history query. The Mongo
// implementation lives in internal/db.
type RecordStore interface {
	Append(ctx context.Context, record *pkg.PatientRecord) error
	ListByDoctor(ctx context.Context, email string) ([]pkg.PatientRecord, error)
}

// AnalysisService runs the symptom-analysis pipeline: prompt the completion
// service with the validated request, parse its reply into a typed result,
// and append the combined record to the store.
type AnalysisService struct {
	LLM   llm.Client
	Store RecordStore
	Log   *logger.Logger
}

// NewAnalysisService constructs an AnalysisService with its dependencies.
func NewAnalysisService(client llm.Client, store RecordStore, log *logger.Logger) *AnalysisService {
	return &AnalysisService{LLM: client, Store: store, Log: log}
}

// Analyze produces a DiagnosisResult for a validated request. Completion
// failures come back as UpstreamError and unparsable replies as
// MalformedResponseError; neither is retried. Persistence is best-effort:
// by contract a store outage must not change the response the caller has
// already earned, so the append error is logged and discarded here.
func (s *AnalysisService) Analyze(ctx context.Context, req pkg.DiagnosisRequest) (*pkg.DiagnosisResult, error) {
	raw, err := s.LLM.Complete(ctx, BuildDiagnosisPrompt(req))
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}
	result, err := ParseDiagnosis(raw)
	if err != nil {
		return nil, err
	}
	record := &pkg.PatientRecord{
		DoctorID:        req.DoctorID,
		DoctorEmail:     req.DoctorEmail,
		PatientInfo:     req,
		DiagnosisResult: *result,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	// Detached context: a client that hangs up after the completion
	// arrives should not cost us the record.
	if err := s.Store.Append(context.Background(), record); err != nil {
		s.Log.Error("failed to persist patient record",
			"doctorEmail", req.DoctorEmail, "error", err)
	}
	return result, nil
}
