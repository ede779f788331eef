package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/util"
	"github.com/Totarae/shortlink/internal/validation"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// QRCode отдаёт PNG с адресом перехода по коду.
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < minQRSize || n > maxQRSize {
			h.fail(w, r, validation.Field("size", "must be an integer between 64 and 1024"))
			return
		}
		size = n
	}

	u, err := h.URLs.Lookup(r.Context(), code)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	png, err := qrcode.Encode(util.ShortLink(h.BaseURL, u.ShortCode), qrcode.Medium, size)
	if err != nil {
		h.fail(w, r, apperrors.Internal(err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
