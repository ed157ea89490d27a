package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pulsenet-backend/internal/core"
	"pulsenet-backend/pkg"
)

// handleAnalyze runs the full analysis pipeline for one request:
// validate, prompt, complete, normalize, persist (best effort), respond.
// Validation failures are rejected before any external call; everything
// after validation surfaces as a 500 with the backend-error envelope.
func (s *Server) handleAnalyze(c *gin.Context) {
	var req pkg.DiagnosisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body: " + err.Error()})
		return
	}
	if err := core.ValidateDiagnosisRequest(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	result, err := s.Analysis.Analyze(c.Request.Context(), req)
	if err != nil {
		var malformed *core.MalformedResponseError
		if errors.As(err, &malformed) {
			s.Log.Error("unparsable completion reply",
				"request_id", c.GetString("request_id"), "raw", malformed.Raw)
		} else {
			s.Log.Error("analysis failed",
				"request_id", c.GetString("request_id"), "error", err)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Backend Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleDoctorRecords returns the persisted history for a doctor, newest
// first, capped by the store. Without an email filter it returns records
// for all doctors.
func (s *Server) handleDoctorRecords(c *gin.Context) {
	records, err := s.Store.ListByDoctor(c.Request.Context(), c.Query("email"))
	if err != nil {
		s.Log.Error("records query failed",
			"request_id", c.GetString("request_id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Backend Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// handleCommonChat answers the assistant endpoint. Note the asymmetry with
// handleAnalyze: once the body is accepted this always responds 200, with
// any internal failure embedded in the reply text by the chat service.
func (s *Server) handleCommonChat(c *gin.Context) {
	var req pkg.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body: " + err.Error()})
		return
	}
	if err := core.ValidateChatRequest(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Chat.Reply(c.Request.Context(), req))
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pulsenet-backend",
	})
}
