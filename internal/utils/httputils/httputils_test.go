package httputils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/nucleo/internal/utils"
)

type payload struct {
	Sequence string `json:"sequence"`
}

func TestDecodeJSON(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		limit       int64
		wantCode    int
	}{
		{"ok", "application/json", `{"sequence":"ACGT"}`, 1024, 0},
		{"ok with charset", "application/json; charset=utf-8", `{"sequence":"ACGT"}`, 1024, 0},
		{"wrong content type", "text/plain", `{"sequence":"ACGT"}`, 1024, http.StatusUnsupportedMediaType},
		{"malformed", "application/json", `{"sequence":`, 1024, http.StatusBadRequest},
		{"too large", "application/json", `{"sequence":"ACGTACGTACGT"}`, 8, http.StatusRequestEntityTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)
			LimitBody(httptest.NewRecorder(), req, tc.limit)

			var p payload
			err := DecodeJSON(req, &p)
			if tc.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, "ACGT", p.Sequence)
				return
			}

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tc.wantCode, httpErr.Code)
		})
	}
}

func TestFormValue(t *testing.T) {
	form := url.Values{"sequence": {"at\r\ngc"}}.Encode()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	v, err := FormValue(req, "sequence")
	require.NoError(t, err)
	assert.Equal(t, "at\r\ngc", v)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	LimitBody(httptest.NewRecorder(), req, 4)
	_, err = FormValue(req, "sequence")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
}

func TestHandleError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &HTTPError{Code: http.StatusTeapot, Message: "short and stout"})
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"error":"short and stout"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	HandleError(rec, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestSuccessResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, SuccessResponse(rec, "done", map[string]int{"A": 1}))

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, map[string]any{"A": 1.0}, body["data"])
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "r-1", RequestID(WithRequestID(context.Background(), "r-1")))
}

func TestLogRequestBody_RestoresBody(t *testing.T) {
	logger := utils.NewDiscardLogger()
	logger.RawBodyLog = true

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sequence":"A"}`))
	body, err := LogRequestBody(req, logger, "r-1")
	require.NoError(t, err)
	assert.Equal(t, `{"sequence":"A"}`, string(body))

	req.Header.Set("Content-Type", "application/json")
	var p payload
	require.NoError(t, DecodeJSON(req, &p))
	assert.Equal(t, "A", p.Sequence)
}

func TestLogRequestBody_TooLarge(t *testing.T) {
	logger := utils.NewDiscardLogger()
	logger.RawBodyLog = true

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"sequence":"ACGTACGT"}`))
	LimitBody(httptest.NewRecorder(), req, 8)

	_, err := LogRequestBody(req, logger, "r-1")
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, httpErr.Code)
}
