package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/respond"
)

// compressible типы ответов, которые имеет смысл сжимать
var compressible = []string{"application/json", "text/plain", "text/html"}

// gzipResponseWriter решает, сжимать ли ответ, по Content-Type в момент записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (g *gzipResponseWriter) WriteHeader(code int) {
	if g.wroteHeader {
		return
	}
	g.wroteHeader = true

	ct := g.Header().Get("Content-Type")
	if code != http.StatusNoContent && code != http.StatusNotModified && isCompressible(ct) {
		g.Header().Set("Content-Encoding", "gzip")
		g.Header().Add("Vary", "Accept-Encoding")
		g.Header().Del("Content-Length")
		g.gz = gzip.NewWriter(g.ResponseWriter)
	}
	g.ResponseWriter.WriteHeader(code)
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	if !g.wroteHeader {
		if g.Header().Get("Content-Type") == "" {
			g.Header().Set("Content-Type", http.DetectContentType(b))
		}
		g.WriteHeader(http.StatusOK)
	}
	if g.gz != nil {
		return g.gz.Write(b)
	}
	return g.ResponseWriter.Write(b)
}

func (g *gzipResponseWriter) close() error {
	if g.gz == nil {
		return nil
	}
	return g.gz.Close()
}

func isCompressible(contentType string) bool {
	for _, t := range compressible {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}

// GzipMiddleware распаковывает gzip-запросы и сжимает текстовые ответы
func GzipMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				reader, err := gzip.NewReader(r.Body)
				if err != nil {
					respond.Error(w, logger, apperrors.New(apperrors.KindValidation, "Unable to decompress request"))
					return
				}
				defer reader.Close()
				r.Body = reader
				r.Header.Del("Content-Encoding")
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.close(); err != nil {
					logger.Warn("Ошибка закрытия gzip", zap.Error(err))
				}
			}()
			next.ServeHTTP(gw, r)
		})
	}
}
