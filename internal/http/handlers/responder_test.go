package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/pickup-teams-service/internal/http/requestutil"
	"github.com/preston-bernstein/pickup-teams-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(requestutil.WithRequestID(req.Context(), "abc123"))

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	assert.Equal(t, "boom", body["error"])
	assert.Equal(t, "abc123", body["requestId"])
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestutil.HeaderRequestID, "header-id")

	writeError(rr, req, http.StatusTeapot, "boom", nil)

	assert.Contains(t, rr.Body.String(), "header-id")
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	assert.Contains(t, buf.String(), "failed to encode response")
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name       string
		body       string
		limit      int64
		wantOK     bool
		wantStatus int
	}{
		{name: "valid", body: `{"name":"Joe"}`, limit: 1024, wantOK: true},
		{name: "no limit", body: `{"name":"Joe"}`, limit: 0, wantOK: true},
		{name: "malformed", body: `{"name":`, limit: 1024, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"nom":"Joe"}`, limit: 1024, wantStatus: http.StatusBadRequest},
		{name: "too large", body: `{"name":"` + strings.Repeat("x", 100) + `"}`, limit: 16, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(tt.body))

			var dest payload
			ok := decodeJSON(rr, req, tt.limit, &dest, nil)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "Joe", dest.Name)
				return
			}
			testutil.AssertStatus(t, rr, tt.wantStatus)
		})
	}
}
