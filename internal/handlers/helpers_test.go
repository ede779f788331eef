package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/handlers"
	"github.com/Totarae/shortlink/internal/middleware"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/service"
	"github.com/Totarae/shortlink/internal/storage"
	"github.com/Totarae/shortlink/internal/util"
	"github.com/Totarae/shortlink/internal/validation"
)

const testBaseURL = "http://localhost:8080"

type env struct {
	h     *handlers.Handler
	store *storage.Memory
	owner *model.User
	other *model.User
	now   time.Time
}

func newEnv(tb testing.TB) *env {
	tb.Helper()
	e, err := buildEnv()
	require.NoError(tb, err)
	return e
}

func buildEnv() (*env, error) {
	ctx := context.Background()
	store := storage.NewMemory()

	owner := &model.User{Email: "bugs@acme.io", APIKey: "owner-key", Tier: model.TierEnterprise}
	other := &model.User{Email: "daffy@acme.io", APIKey: "other-key", Tier: model.TierHobby}
	if err := store.InsertUser(ctx, owner); err != nil {
		return nil, err
	}
	if err := store.InsertUser(ctx, other); err != nil {
		return nil, err
	}

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen, err := util.NewGenerator()
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	urls := service.NewShortenerService(store, gen, auth.NewBcrypt(bcrypt.MinCost), logger,
		service.WithClock(func() time.Time { return now }))
	users := service.NewUserService(store, logger)
	h := handlers.NewHandler(urls, users, validation.New(), testBaseURL, logger)

	return &env{h: h, store: store, owner: owner, other: other, now: now}, nil
}

// request собирает запрос с пользователем в контексте и параметрами пути chi.
func request(method, target, body string, user *model.User, params map[string]string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if user != nil {
		ctx = middleware.WithUser(ctx, user)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}
