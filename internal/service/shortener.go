package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/apperrors"
	"github.com/Totarae/shortlink/internal/auth"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
	"github.com/Totarae/shortlink/internal/util"
)

// maxCodeAttempts число попыток вставки со сгенерированным кодом.
const maxCodeAttempts = 3

// CodeGenerator выдаёт новые короткие коды.
type CodeGenerator interface {
	Generate() (string, error)
}

type ShortenerService struct {
	URLs   storage.URLStore
	Codes  CodeGenerator
	Hasher auth.PasswordHasher
	Logger *zap.Logger
	now    func() time.Time
}

// Option настраивает сервис.
type Option func(*ShortenerService)

// WithClock подменяет текущее время, используется в тестах.
func WithClock(now func() time.Time) Option {
	return func(s *ShortenerService) {
		s.now = now
	}
}

func NewShortenerService(urls storage.URLStore, codes CodeGenerator, hasher auth.PasswordHasher, logger *zap.Logger, opts ...Option) *ShortenerService {
	s := &ShortenerService{
		URLs:   urls,
		Codes:  codes,
		Hasher: hasher,
		Logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.Validation(map[string][]string{"expiresAt": {"must be an RFC 3339 datetime"}})
	}
	return t, nil
}

// newURL строит запись из уже проверенного запроса. Код не заполняется.
func (s *ShortenerService) newURL(user *model.User, req model.ShortenRequest) (*model.URL, error) {
	u := &model.URL{
		URL:       req.URL,
		UserID:    user.ID,
		CreatedAt: s.now(),
	}
	if req.ExpiresAt != nil {
		t, err := parseTime(*req.ExpiresAt)
		if err != nil {
			return nil, err
		}
		u.ExpiresAt = &t
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := s.Hasher.Hash(*req.Password)
		if err != nil {
			return nil, apperrors.Internal(err)
		}
		u.Password = &hash
	}
	return u, nil
}

func (s *ShortenerService) generateCode() (string, error) {
	code, err := s.Codes.Generate()
	if err != nil {
		return "", apperrors.Internal(err)
	}
	return code, nil
}

// Create сохраняет ссылку. Явный занятый код даёт Conflict, сгенерированный код
// перегенерируется до maxCodeAttempts раз.
func (s *ShortenerService) Create(ctx context.Context, user *model.User, req model.ShortenRequest) (*model.URL, error) {
	u, err := s.newURL(user, req)
	if err != nil {
		return nil, err
	}

	if req.ShortCode != nil {
		u.ShortCode = *req.ShortCode
		if err := s.URLs.InsertURL(ctx, u); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return nil, apperrors.Conflict(msgCodeInUse, err)
			}
			return nil, apperrors.Internal(fmt.Errorf("create url: %w", err))
		}
		return u, nil
	}

	for attempt := 1; ; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return nil, err
		}
		u.ShortCode = code

		err = s.URLs.InsertURL(ctx, u)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, storage.ErrConflict) {
			return nil, apperrors.Internal(fmt.Errorf("create url: %w", err))
		}
		if attempt == maxCodeAttempts {
			return nil, apperrors.Conflict(msgCodeInUse, err)
		}
		s.Logger.Warn("Сгенерированный код занят, повтор",
			zap.String("code", code),
			zap.Int("attempt", attempt),
		)
	}
}

// CreateBatch сохраняет все ссылки запроса разом. Любой конфликт кода отклоняет пакет.
func (s *ShortenerService) CreateBatch(ctx context.Context, user *model.User, req model.BatchShortenRequest) ([]*model.URL, error) {
	urls := make([]*model.URL, 0, len(req.URLs))
	for i, item := range req.URLs {
		u, err := s.newURL(user, item)
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) && appErr.Kind == apperrors.KindValidation {
				return nil, apperrors.Validation(map[string][]string{
					fmt.Sprintf("urls[%d].expiresAt", i): appErr.Fields["expiresAt"],
				})
			}
			return nil, err
		}
		if item.ShortCode != nil {
			u.ShortCode = *item.ShortCode
		} else if u.ShortCode, err = s.generateCode(); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}

	if err := s.URLs.InsertURLs(ctx, urls); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, apperrors.Conflict(msgCodeInUse, err)
		}
		return nil, apperrors.Internal(fmt.Errorf("create batch: %w", err))
	}

	s.Logger.Info("Пакет ссылок создан", zap.Int64("user_id", user.ID), zap.Int("count", len(urls)))
	return urls, nil
}

// List ссылки пользователя.
func (s *ShortenerService) List(ctx context.Context, user *model.User) ([]*model.URL, error) {
	urls, err := s.URLs.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("list urls: %w", err))
	}
	return urls, nil
}

// Ping проверяет доступность хранилища.
func (s *ShortenerService) Ping(ctx context.Context) error {
	return s.URLs.Ping(ctx)
}

// Lookup ищет ссылку по коду без проверок доступа.
func (s *ShortenerService) Lookup(ctx context.Context, code string) (*model.URL, error) {
	u, err := s.URLs.FindByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgURLNotFound)
		}
		return nil, apperrors.Internal(fmt.Errorf("find url: %w", err))
	}
	return u, nil
}

// Redirect проверяет доступ, учитывает переход и возвращает адрес назначения.
func (s *ShortenerService) Redirect(ctx context.Context, code string, pw *string) (string, error) {
	u, err := s.Lookup(ctx, code)
	if err != nil {
		return "", err
	}

	now := s.now()
	if err := CheckRedirect(u, now, pw, s.Hasher); err != nil {
		return "", err
	}

	if err := s.URLs.UpdateClicksAndAccess(ctx, u.ID, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperrors.NotFound(msgURLNotFound)
		}
		return "", apperrors.Internal(fmt.Errorf("count click: %w", err))
	}
	return util.EnsureScheme(u.URL), nil
}

// Delete удаляет ссылку владельца и возвращает сообщение для клиента.
func (s *ShortenerService) Delete(ctx context.Context, user *model.User, code string) (string, error) {
	u, err := s.Lookup(ctx, code)
	if err != nil {
		return "", err
	}
	if err := CheckOwner(u, user); err != nil {
		return "", err
	}

	if err := s.URLs.DeleteByShortCode(ctx, code); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", apperrors.NotFound(msgURLNotFound)
		}
		return "", apperrors.Internal(fmt.Errorf("delete url: %w", err))
	}
	return msgURLDeleted, nil
}

func (s *ShortenerService) buildPatch(req model.UpdateURLRequest) (model.URLPatch, error) {
	var patch model.URLPatch

	switch {
	case !req.ExpiresAt.Set:
	case !req.ExpiresAt.Valid:
		patch.ExpiresAt = model.Null[time.Time]()
	default:
		t, err := parseTime(req.ExpiresAt.Value)
		if err != nil {
			return patch, err
		}
		patch.ExpiresAt = model.NullableOf(t)
	}

	switch {
	case !req.Password.Set:
	case !req.Password.Valid:
		patch.Password = model.Null[string]()
	default:
		hash, err := s.Hasher.Hash(req.Password.Value)
		if err != nil {
			return patch, apperrors.Internal(err)
		}
		patch.Password = model.NullableOf(hash)
	}
	return patch, nil
}

// Update частично обновляет срок жизни и пароль ссылки владельца.
func (s *ShortenerService) Update(ctx context.Context, user *model.User, id int64, req model.UpdateURLRequest) (*model.URL, error) {
	u, err := s.URLs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgURLNotFound)
		}
		return nil, apperrors.Internal(fmt.Errorf("find url: %w", err))
	}
	if err := CheckOwner(u, user); err != nil {
		return nil, err
	}

	patch, err := s.buildPatch(req)
	if err != nil {
		return nil, err
	}
	if patch.Empty() {
		return u, nil
	}

	updated, err := s.URLs.UpdatePartial(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NotFound(msgURLNotFound)
		}
		return nil, apperrors.Internal(fmt.Errorf("update url: %w", err))
	}
	return updated, nil
}
