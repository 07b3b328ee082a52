package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"leasedesk/internal/lease"
	"leasedesk/pkg/types"
)

const (
	defaultRecipientEmail = "tenant@example.com"
	defaultRecipientName  = "Tenant Name"
)

type documentStatusQuery struct {
	ID    string `form:"id"`
	Email string `form:"email"`
	Name  string `form:"name"`
}

func (s *Service) handleDocumentStatus(w http.ResponseWriter, r *http.Request) {
	var query documentStatusQuery
	if err := decoder.Decode(&query, r.URL.Query()); err != nil {
		s.logger.WithError(err).Error("failed to decode document status query")
		s.respondError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	if query.ID == "" {
		s.respondError(w, http.StatusBadRequest, "Document ID is required")
		return
	}

	if query.Email == "" {
		query.Email = defaultRecipientEmail
	}
	if query.Name == "" {
		query.Name = defaultRecipientName
	}

	status, err := s.provider.Document(r.Context(), query.ID, query.Email, query.Name)
	if err != nil {
		s.logger.WithError(err).Error("failed to fetch document status")
		s.respondError(w, http.StatusInternalServerError, "failed to fetch document status")
		return
	}

	s.respondJSON(w, http.StatusOK, status)
}

type generateAndSendResponse struct {
	Success       bool                   `json:"success"`
	DocumentID    int64                  `json:"documentId,omitempty"`
	RedirectURL   string                 `json:"redirectUrl,omitempty"`
	DocumensoData *types.SigningDocument `json:"documensoData,omitempty"`
	Error         string                 `json:"error,omitempty"`
}

// handleGenerateAndSend runs the lease pipeline and maps its failures onto
// the response taxonomy: validation 400, missing property 404, everything
// else 500. No partial success is ever reported.
func (s *Service) handleGenerateAndSend(w http.ResponseWriter, r *http.Request) {
	var req types.LeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, generateAndSendResponse{Success: false, Error: "invalid request body"})
		return
	}

	result, err := s.pipeline.Run(r.Context(), req)
	if err != nil {
		var validationErr *lease.ValidationError
		switch {
		case errors.As(err, &validationErr):
			s.respondJSON(w, http.StatusBadRequest, generateAndSendResponse{Success: false, Error: validationErr.Message})
		case errors.Is(err, types.ErrPropertyNotFound):
			s.respondJSON(w, http.StatusNotFound, generateAndSendResponse{Success: false, Error: "Property not found"})
		default:
			s.logger.WithError(err).Error("failed to generate and send lease")
			s.respondJSON(w, http.StatusInternalServerError, generateAndSendResponse{Success: false, Error: err.Error()})
		}
		return
	}

	s.respondJSON(w, http.StatusOK, generateAndSendResponse{
		Success:       true,
		DocumentID:    result.DocumentID,
		RedirectURL:   result.RedirectURL,
		DocumensoData: result.Document,
	})
}
