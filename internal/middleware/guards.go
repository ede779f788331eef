package middleware

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/respond"
	"github.com/Totarae/shortlink/internal/service"
)

type ctxKey struct{}

// WithUser кладёт пользователя в контекст.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext достаёт пользователя, положенного Authenticate.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*model.User)
	return user, ok && user != nil
}

// Guard проверка перед обработчиком. Может вернуть запрос с обогащённым контекстом.
type Guard func(r *http.Request) (*http.Request, error)

// Guards выполняет проверки по порядку. Первая ошибка прерывает цепочку и уходит клиенту.
func Guards(logger *zap.Logger, guards ...Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error
			for _, g := range guards {
				if r, err = g(r); err != nil {
					respond.Error(w, logger, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate находит пользователя по заголовку x-api-key.
func Authenticate(v *auth.Verifier) Guard {
	return func(r *http.Request) (*http.Request, error) {
		user, err := v.Verify(r.Context(), r.Header.Get(auth.HeaderAPIKey))
		if err != nil {
			return r, err
		}
		return r.WithContext(WithUser(r.Context(), user)), nil
	}
}

// NotBlacklisted отклоняет отозванные ключи. Ставится после Authenticate.
func NotBlacklisted(bl auth.Blacklist) Guard {
	return func(r *http.Request) (*http.Request, error) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			return r, apperrors.Unauthenticated("Missing API Key")
		}
		listed, err := bl.Contains(r.Context(), user.APIKey)
		if err != nil {
			return r, apperrors.Internal(fmt.Errorf("blacklist check: %w", err))
		}
		if listed {
			return r, apperrors.Forbidden("Operation not allowed")
		}
		return r, nil
	}
}

// RequireTier пропускает только пользователей с нужным тарифом.
func RequireTier(tier model.Tier) Guard {
	return func(r *http.Request) (*http.Request, error) {
		user, _ := UserFromContext(r.Context())
		return r, service.CheckTier(user, tier)
	}
}
