package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/utils"
	"github.com/MKhiriev/go-user-api/models"
)

// writeEnvelope shapes the uniform response envelope and writes it with the
// given HTTP status code. The code is mirrored in the body's Status field.
func writeEnvelope(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	response := models.Response{
		Status:  statusCode,
		Message: message,
		Data:    data,
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response envelope failed")
	}
}

// writeEnvelopeWithPagination is the list-operation variant of writeEnvelope
// carrying pagination metadata alongside the page of data.
func writeEnvelopeWithPagination(w http.ResponseWriter, r *http.Request, statusCode int, message string, meta models.Meta, data any) {
	response := models.ResponseWithPagination{
		Status:  statusCode,
		Message: message,
		Meta:    meta,
		Data:    data,
	}

	if _, err := utils.WriteJSON(w, response, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response envelope failed")
	}
}
