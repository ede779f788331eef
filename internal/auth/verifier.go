// Package auth проверяет API-ключи, чёрный список ключей и пароли ссылок.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

// HeaderAPIKey заголовок с ключом клиента.
const HeaderAPIKey = "x-api-key"

// Verifier находит пользователя по API-ключу.
type Verifier struct {
	users storage.UserStore
}

func NewVerifier(users storage.UserStore) *Verifier {
	return &Verifier{users: users}
}

// Verify возвращает владельца ключа или ошибку Unauthenticated.
func (v *Verifier) Verify(ctx context.Context, apiKey string) (*model.User, error) {
	if apiKey == "" {
		return nil, apperrors.Unauthenticated("Missing API Key")
	}

	user, err := v.users.FindUserByAPIKey(ctx, apiKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.Unauthenticated("Invalid API Key")
		}
		return nil, apperrors.Internal(fmt.Errorf("verify api key: %w", err))
	}
	return user, nil
}
