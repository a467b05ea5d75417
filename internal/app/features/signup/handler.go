// internal/app/features/signup/handler.go
//
// Signup links let an admin hand out self-registration to new members
// without typing a URL: the link endpoint returns the registration URL
// and the qr endpoint renders it as a PNG QR code for printing or
// projecting at a meeting.
package signup

import (
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/ahlihub/ahlihub/internal/app/system/httpjson"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type Handler struct {
	Log     *zap.Logger
	BaseURL string
}

func NewHandler(baseURL string, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, BaseURL: baseURL}
}

func (h *Handler) registerURL() string {
	return h.BaseURL + "/register"
}

// HandleLink returns the self-registration URL as JSON.
func (h *Handler) HandleLink(w http.ResponseWriter, r *http.Request) {
	httpjson.OK(w, "", httpjson.Fields{"url": h.registerURL()})
}

// HandleQR renders the self-registration URL as a PNG QR code. The
// optional size query parameter is in pixels, clamped to [64, 1024].
func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpjson.Invalid(w, "size must be a number")
			return
		}
		size = n
	}
	if size < 64 {
		size = 64
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(h.registerURL(), qrcode.Medium, size)
	if err != nil {
		h.Log.Error("encoding qr code", zap.Error(err))
		httpjson.ServerError(w, "could not generate qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
