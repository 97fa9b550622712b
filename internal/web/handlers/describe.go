package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yourhome24/expose/internal/ai"
	"github.com/yourhome24/expose/internal/config"
	"github.com/yourhome24/expose/internal/describe"
	"github.com/yourhome24/expose/internal/listing"
)

// DescribeHandler handles the description generation endpoint.
type DescribeHandler struct {
	service *describe.Service
}

// NewDescribeHandler creates a new describe handler.
func NewDescribeHandler(service *describe.Service) *DescribeHandler {
	return &DescribeHandler{service: service}
}

type describeResponse struct {
	Description string `json:"description"`
}

// Describe runs the description pipeline for one submitted fact sheet.
// Intake is lenient: an unreadable body becomes an empty fact sheet, which
// then fails validation with a clear message instead of a decode error.
func (h *DescribeHandler) Describe(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		raw = nil
	}

	var l listing.Listing
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &l); err != nil {
			l = listing.Listing{}
			raw = nil
		}
	}

	text, err := h.service.Generate(r.Context(), l, raw)
	if err != nil {
		respondError(w, describeStatus(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, describeResponse{Description: text})
}

// describeStatus maps the pipeline's error kinds onto HTTP statuses:
// invalid input 400, missing configuration 500, provider failure 502,
// anything else 500.
func describeStatus(err error) int {
	var fieldErr *listing.FieldError
	if errors.As(err, &fieldErr) {
		return http.StatusBadRequest
	}
	var missing *config.MissingVarError
	if errors.As(err, &missing) {
		return http.StatusInternalServerError
	}
	var upstream *ai.UpstreamError
	if errors.As(err, &upstream) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
