package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"comanda/internal/middleware"
	"comanda/internal/model"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("error", message).
		Str("code", code).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: middleware.CorrelationIDFrom(r.Context()),
	})
}

// writeDomainError maps a service error to an HTTP response. Domain
// errors keep their code and message; everything else from the gateway
// side is reported as a bad-gateway condition so the caller can tell a
// backend outage from a local fault.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, r, http.StatusBadGateway, model.ErrCodeGatewayError, "gateway request failed", logger)
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeMissingField, model.ErrCodeInvalidQuantity:
		return http.StatusBadRequest
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeGatewayError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// pathID extracts the identifier segment after prefix, stripping an
// optional trailing action segment ("/close", "/email").
func pathID(path, prefix string) string {
	if len(path) <= len(prefix) {
		return ""
	}
	id := path[len(prefix):]
	for i := 0; i < len(id); i++ {
		if id[i] == '/' {
			return id[:i]
		}
	}
	return id
}
