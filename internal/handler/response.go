package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeJSON reads the request body into v. An empty body leaves v untouched.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Body == nil {
		return true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrEmptyPool) ||
		errors.Is(err, crypto.ErrPoolTooSmall) ||
		errors.Is(err, crypto.ErrVocabularyTooSmall) ||
		errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrInvalidWordCount) ||
		errors.Is(err, service.ErrUnknownType) ||
		errors.Is(err, service.ErrLengthOutOfRange) ||
		errors.Is(err, service.ErrWordCountOutOfRange) ||
		errors.Is(err, service.ErrSuffixOutOfRange) ||
		errors.Is(err, service.ErrSeparatorTooLong) ||
		errors.Is(err, service.ErrPasswordRequired) ||
		errors.Is(err, service.ErrUnsupportedFormat)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
