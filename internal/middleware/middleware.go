package middleware

import (
	"context"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

const requestLogTimeout = 2 * time.Second

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

// LoggingMiddleware пишет в лог метод, URI, статус, размер и длительность каждого запроса
func LoggingMiddleware(loggrt *zap.Logger) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, r *http.Request) {
			start := time.Now()

			lw := &loggingResponseWriter{ResponseWriter: resp, statusCode: http.StatusOK}

			next.ServeHTTP(lw, r)

			duration := time.Since(start)
			loggrt.Info("HTTP Request",
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", lw.statusCode),
				zap.Int("size", lw.size),
				zap.Duration("duration", duration),
			)
		})
	}
}

func (lw *loggingResponseWriter) WriteHeader(code int) {
	lw.statusCode = code
	lw.ResponseWriter.WriteHeader(code)
}

func (lw *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := lw.ResponseWriter.Write(b)
	lw.size += size
	return size, err
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return "N/A"
	}
	return host
}

// RequestLogMiddleware сохраняет каждый запрос в журнал после ответа.
// Ошибка записи только логируется, ответ клиенту не меняется.
func RequestLogMiddleware(sink storage.RequestLogStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			entry := model.RequestLog{
				Method:    r.Method,
				URL:       r.URL.String(),
				UserAgent: r.UserAgent(),
				IP:        clientIP(r),
				Timestamp: time.Now().UTC(),
			}
			if entry.UserAgent == "" {
				entry.UserAgent = "N/A"
			}

			next.ServeHTTP(w, r)

			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), requestLogTimeout)
			defer cancel()
			if err := sink.AppendRequestLog(ctx, entry); err != nil {
				logger.Warn("Failed to store request info", zap.Error(err), zap.String("uri", entry.URL))
			}
		})
	}
}
