package httpjson

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}

func TestOK_FlattensFields(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, "done", Fields{"count": 3})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["message"] != "done" {
		t.Errorf("message = %v, want done", body["message"])
	}
	if body["count"] != float64(3) {
		t.Errorf("count = %v, want 3", body["count"])
	}
}

func TestFailureWriters(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(http.ResponseWriter, string)
		status int
	}{
		{"invalid", Invalid, http.StatusBadRequest},
		{"unauthenticated", Unauthenticated, http.StatusUnauthorized},
		{"forbidden", Forbidden, http.StatusForbidden},
		{"not_found", NotFound, http.StatusNotFound},
		{"conflict", Conflict, http.StatusConflict},
		{"server_error", ServerError, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.fn(rec, "nope")

			if rec.Code != tc.status {
				t.Errorf("status = %d, want %d", rec.Code, tc.status)
			}
			body := decodeBody(t, rec)
			if body["success"] != false {
				t.Errorf("success = %v, want false", body["success"])
			}
			if body["message"] != "nope" {
				t.Errorf("message = %v, want nope", body["message"])
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}
