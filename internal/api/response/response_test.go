package response_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/odemir/networth-tracker-backend/internal/api/response"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status, content type and body", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.RespondJSON(w, 200, map[string]string{"status": "ok"})

		if w.Code != 200 {
			t.Errorf("Expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got %q", ct)
		}

		var body map[string]string
		json.NewDecoder(w.Body).Decode(&body) //nolint:errcheck
		if body["status"] != "ok" {
			t.Errorf("Expected status ok, got %v", body)
		}
	})

	t.Run("sends no body when data is nil", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.RespondJSON(w, 204, nil)

		if w.Code != 204 {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %q", w.Body.String())
		}
	})

	t.Run("logs encode failures through the configured logger", func(t *testing.T) {
		var buf bytes.Buffer
		response.SetLogger(zerolog.New(&buf))
		t.Cleanup(func() { response.SetLogger(zerolog.Nop()) })

		w := httptest.NewRecorder()
		// channels are not JSON-encodable
		response.RespondJSON(w, 200, map[string]any{"ch": make(chan int)})

		if !strings.Contains(buf.String(), "failed to encode JSON response") {
			t.Errorf("Expected encode failure log, got %q", buf.String())
		}
		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Expected structured log entry, got %q", buf.String())
		}
		if entry["component"] != "response" {
			t.Errorf("Expected component response, got %v", entry["component"])
		}
	})
}

func TestRespondError(t *testing.T) {
	t.Run("includes message and details", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.RespondError(w, 400, "validation failed", "name is required")

		var body response.ErrorResponse
		json.NewDecoder(w.Body).Decode(&body) //nolint:errcheck
		if body.Error != "validation failed" {
			t.Errorf("Expected validation failed, got %q", body.Error)
		}
		if body.Details != "name is required" {
			t.Errorf("Expected details, got %v", body.Details)
		}
	})

	t.Run("omits empty details from the payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		response.RespondError(w, 404, "asset not found", nil)

		if strings.Contains(w.Body.String(), "details") {
			t.Errorf("Expected details to be omitted, got %q", w.Body.String())
		}
	})
}
