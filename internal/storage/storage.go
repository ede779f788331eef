// Package storage описывает интерфейсы хранилищ и реализацию в памяти.
package storage

//go:generate mockgen -destination=../mocks/storage_mock.go -package=mocks github.com/Totarae/shortlink/internal/storage URLStore,UserStore

import (
	"context"
	"errors"
	"time"

	"github.com/Totarae/shortlink/internal/model"
)

var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrConflict нарушено ограничение уникальности.
	ErrConflict = errors.New("conflict")
)

// URLStore хранилище коротких ссылок.
type URLStore interface {
	// InsertURL сохраняет ссылку и заполняет её ID.
	InsertURL(ctx context.Context, u *model.URL) error
	// InsertURLs сохраняет набор ссылок.
	InsertURLs(ctx context.Context, urls []*model.URL) error
	FindByShortCode(ctx context.Context, code string) (*model.URL, error)
	// FindByUserID возвращает ссылки владельца в порядке создания.
	FindByUserID(ctx context.Context, userID int64) ([]*model.URL, error)
	FindByID(ctx context.Context, id int64) (*model.URL, error)
	// UpdateClicksAndAccess атомарно увеличивает счётчик переходов и время последнего доступа.
	UpdateClicksAndAccess(ctx context.Context, id int64, at time.Time) error
	// UpdatePartial применяет патч и возвращает обновлённую запись.
	UpdatePartial(ctx context.Context, id int64, patch model.URLPatch) (*model.URL, error)
	DeleteByShortCode(ctx context.Context, code string) error
	Ping(ctx context.Context) error
}

// UserStore хранилище пользователей.
type UserStore interface {
	// InsertUser сохраняет пользователя. Повтор email или ключа даёт ErrConflict.
	InsertUser(ctx context.Context, u *model.User) error
	FindUsersByEmail(ctx context.Context, email string) ([]*model.User, error)
	FindUserByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
}

// RequestLogStore журнал входящих запросов.
type RequestLogStore interface {
	AppendRequestLog(ctx context.Context, entry model.RequestLog) error
}

// Store объединяет все хранилища одного бэкенда.
type Store interface {
	URLStore
	UserStore
	RequestLogStore
	Close()
}
