package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/mocks"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?x=1", nil))

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ping?x=1", fields["uri"])
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.EqualValues(t, 5, fields["size"])
}

func TestRequestLogMiddleware(t *testing.T) {
	store := storage.NewMemory()
	h := RequestLogMiddleware(store, zap.NewNop())(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/urls/shorten", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	req.Header.Set("User-Agent", "looney/1.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Del("User-Agent")
	h.ServeHTTP(httptest.NewRecorder(), req)

	logs := store.RequestLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "POST", logs[0].Method)
	assert.Equal(t, "/urls/shorten", logs[0].URL)
	assert.Equal(t, "10.1.2.3", logs[0].IP)
	assert.Equal(t, "looney/1.0", logs[0].UserAgent)
	assert.False(t, logs[0].Timestamp.IsZero())
	assert.Equal(t, "N/A", logs[1].UserAgent)
}

type failingSink struct{}

func (failingSink) AppendRequestLog(context.Context, model.RequestLog) error {
	return errors.New("table missing")
}

func TestRequestLogFailureDoesNotAffectResponse(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := RequestLogMiddleware(failingSink{}, zap.New(core))(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Failed to store request info").Len())
}

func TestGzipMiddleware(t *testing.T) {
	h := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"url":"https://example.com"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/urls/shorten", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com"}`, string(out))
}

func TestGzipSkipsBinary(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n")
	h := GzipMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))

	req := httptest.NewRequest(http.MethodGet, "/urls/qrcode/abc", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestGzipBadRequestBody(t *testing.T) {
	h := GzipMiddleware(zap.NewNop())(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func newGuardedHandler(t *testing.T, bl auth.Blacklist, guards ...func(*auth.Verifier, auth.Blacklist) Guard) (http.Handler, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.InsertUser(ctx, &model.User{Email: "bugs@acme.io", APIKey: "hobby-key", Tier: model.TierHobby}))
	require.NoError(t, store.InsertUser(ctx, &model.User{Email: "taz@acme.io", APIKey: "ent-key", Tier: model.TierEnterprise}))
	require.NoError(t, store.InsertUser(ctx, &model.User{Email: "elmer@acme.io", APIKey: "revoked", Tier: model.TierEnterprise}))

	v := auth.NewVerifier(store)
	var gs []Guard
	for _, g := range guards {
		gs = append(gs, g(v, bl))
	}
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = io.WriteString(w, user.Email)
	})
	return Guards(zap.NewNop(), gs...)(final), store
}

var (
	authGuard = func(v *auth.Verifier, _ auth.Blacklist) Guard { return Authenticate(v) }
	blGuard   = func(_ *auth.Verifier, bl auth.Blacklist) Guard { return NotBlacklisted(bl) }
	tierGuard = func(*auth.Verifier, auth.Blacklist) Guard { return RequireTier(model.TierEnterprise) }
)

func TestGuards(t *testing.T) {
	h, _ := newGuardedHandler(t, auth.StaticBlacklist{"revoked"}, authGuard, blGuard, tierGuard)

	tests := []struct {
		name     string
		key      string
		wantCode int
		wantBody string
	}{
		{"missing key", "", http.StatusUnauthorized, `{"error":"Missing API Key"}`},
		{"unknown key", "nope", http.StatusUnauthorized, `{"error":"Invalid API Key"}`},
		{"blacklisted", "revoked", http.StatusForbidden, `{"error":"Operation not allowed"}`},
		{"hobby tier", "hobby-key", http.StatusForbidden, `{"error":"Operation not allowed"}`},
		{"enterprise", "ent-key", http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/urls/shorten/batch", nil)
			if tt.key != "" {
				req.Header.Set("x-api-key", tt.key)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Equal(t, "taz@acme.io", rec.Body.String())
			}
		})
	}
}

func TestBlacklistErrorIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	bl := mocks.NewMockBlacklist(ctrl)
	bl.EXPECT().Contains(gomock.Any(), "hobby-key").Return(false, errors.New("redis down"))

	h, _ := newGuardedHandler(t, bl, authGuard, blGuard)
	req := httptest.NewRequest(http.MethodGet, "/urls", nil)
	req.Header.Set("x-api-key", "hobby-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestNotBlacklistedWithoutUser(t *testing.T) {
	_, err := NotBlacklisted(auth.StaticBlacklist{})(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}
