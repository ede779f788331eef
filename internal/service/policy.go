package service

import (
	"fmt"
	"time"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/model"
)

// Сообщения, которые видит клиент.
const (
	msgURLNotFound  = "URL not found"
	msgURLExpired   = "URL expired"
	msgNotAllowed   = "Operation not allowed"
	msgUnauthorized = "Unauthorized"
	msgCodeInUse    = "Short code already in use"
	msgUserExists   = "User with this email already exists"
	msgUserNotFound = "User not found"
	msgURLDeleted   = "URL deleted successfully"
)

// CheckExpiry запрещает переход по ссылке, чей срок истёк к моменту now.
func CheckExpiry(u *model.URL, now time.Time) error {
	if u.Expired(now) {
		return apperrors.Gone(msgURLExpired)
	}
	return nil
}

// CheckPassword проверяет пароль защищённой ссылки.
// Пустой pw приравнивается к отсутствующему.
func CheckPassword(u *model.URL, pw *string, hasher auth.PasswordHasher) error {
	if !u.Protected() {
		return nil
	}
	if pw == nil || *pw == "" {
		return apperrors.Forbidden(msgNotAllowed)
	}
	ok, err := hasher.Verify(*u.Password, *pw)
	if err != nil {
		return apperrors.Internal(fmt.Errorf("verify url password: %w", err))
	}
	if !ok {
		return apperrors.Unauthenticated(msgUnauthorized)
	}
	return nil
}

// CheckOwner разрешает изменение только владельцу ссылки.
func CheckOwner(u *model.URL, user *model.User) error {
	if user == nil || u.UserID != user.ID {
		return apperrors.Forbidden(msgNotAllowed)
	}
	return nil
}

// CheckTier требует у пользователя заданный тариф.
func CheckTier(user *model.User, required model.Tier) error {
	if user == nil || user.Tier != required {
		return apperrors.Forbidden(msgNotAllowed)
	}
	return nil
}

// CheckRedirect порядок проверок при переходе: срок, затем пароль.
func CheckRedirect(u *model.URL, now time.Time, pw *string, hasher auth.PasswordHasher) error {
	if err := CheckExpiry(u, now); err != nil {
		return err
	}
	return CheckPassword(u, pw, hasher)
}
