package signup

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

// pngMagic is the fixed 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestHandleLink(t *testing.T) {
	h := NewHandler("https://ahli.example.org", zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleLink(rec, httptest.NewRequest(http.MethodGet, "/link", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if want := `"https://ahli.example.org/register"`; !bytes.Contains(rec.Body.Bytes(), []byte(want)) {
		t.Fatalf("body %s does not contain %s", rec.Body.String(), want)
	}
}

func TestHandleQR_ReturnsPNG(t *testing.T) {
	h := NewHandler("https://ahli.example.org", zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleQR(rec, httptest.NewRequest(http.MethodGet, "/qr", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), pngMagic) {
		t.Fatal("body is not a PNG")
	}
}

func TestHandleQR_SizeValidation(t *testing.T) {
	h := NewHandler("https://ahli.example.org", zap.NewNop())

	rec := httptest.NewRecorder()
	h.HandleQR(rec, httptest.NewRequest(http.MethodGet, "/qr?size=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric size: status = %d, want 400", rec.Code)
	}

	// Out-of-range sizes clamp instead of failing.
	rec = httptest.NewRecorder()
	h.HandleQR(rec, httptest.NewRequest(http.MethodGet, "/qr?size=999999", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("huge size: status = %d, want 200", rec.Code)
	}
}
