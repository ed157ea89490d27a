package core

import (
	"encoding/json"
	"strings"

	"pulsenet-backend/pkg"
)

const (
	openingFence = "```json"
	bareFence    = "```"
)

// stripFences removes at most one leading fence marker (language-tagged or
// bare) and at most one trailing fence marker, plus surrounding whitespace.
// Fences inside the body are left alone.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, openingFence) {
		s = s[len(openingFence):]
	} else if strings.HasPrefix(s, bareFence) {
		s = s[len(bareFence):]
	}
	if strings.HasSuffix(s, bareFence) {
		s = s[:len(s)-len(bareFence)]
	}
	return strings.TrimSpace(s)
}

// ParseDiagnosis turns the completion service's raw reply into a typed
// DiagnosisResult. The model is instructed to answer with bare JSON but in
// practice wraps it in a markdown code fence often enough that we strip one
// before parsing. A reply that still fails to parse is reported as a
// MalformedResponseError carrying the full raw text; it is never retried
// and never replaced with an empty result.
func ParseDiagnosis(raw string) (*pkg.DiagnosisResult, error) {
	var result pkg.DiagnosisResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	// The response contract promises a treatments array even when the
	// model omits the key entirely.
	if result.Treatments == nil {
		result.Treatments = []pkg.Treatment{}
	}
	return &result, nil
}

// NormalizeChatReply is the chat-path counterpart: no parsing, just the
// trimmed raw text.
func NormalizeChatReply(raw string) string {
	return strings.TrimSpace(raw)
}
