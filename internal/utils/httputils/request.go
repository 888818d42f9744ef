package httputils

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/wgomg/nucleo/internal/utils"
)

func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if tooLarge := asTooLarge(err); tooLarge != nil {
			return tooLarge
		}
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

// FormValue reads a urlencoded or multipart form field, mapping an oversized
// body to 413.
func FormValue(r *http.Request, key string) (string, error) {
	if err := r.ParseForm(); err != nil {
		if tooLarge := asTooLarge(err); tooLarge != nil {
			return "", tooLarge
		}
		return "", &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid form payload: " + err.Error(),
		}
	}
	return r.PostFormValue(key), nil
}

func LimitBody(w http.ResponseWriter, r *http.Request, limit int64) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
}

func asTooLarge(err error) *HTTPError {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return nil
	}
	return &HTTPError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: "Request body exceeds " + strconv.FormatInt(maxErr.Limit, 10) + " bytes",
	}
}

func LogRequestBody(r *http.Request, logger *utils.Logger, reqID string) ([]byte, error) {
	if !logger.RawBodyLog {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		if tooLarge := asTooLarge(err); tooLarge != nil {
			return nil, tooLarge
		}
		return nil, &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Failed to read request body: " + err.Error(),
		}
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	logger.Debug(&reqID, "Raw request body: %s", string(bodyBytes))

	return bodyBytes, nil
}
