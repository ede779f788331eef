package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Totarae/shortlink/internal/model"
)

// Memory потокобезопасное хранилище в памяти. Используется без DATABASE_DSN и в тестах.
type Memory struct {
	mu sync.RWMutex

	urls      map[int64]*model.URL
	codes     map[string]int64
	lastURLID int64

	users      map[int64]*model.User
	emails     map[string]int64
	apiKeys    map[string]int64
	lastUserID int64

	logs []model.RequestLog
}

var _ Store = (*Memory)(nil)

// NewMemory создаёт пустое хранилище.
func NewMemory() *Memory {
	return &Memory{
		urls:    make(map[int64]*model.URL),
		codes:   make(map[string]int64),
		users:   make(map[int64]*model.User),
		emails:  make(map[string]int64),
		apiKeys: make(map[string]int64),
	}
}

func copyURL(u *model.URL) *model.URL {
	c := *u
	if u.Password != nil {
		p := *u.Password
		c.Password = &p
	}
	if u.ExpiresAt != nil {
		t := *u.ExpiresAt
		c.ExpiresAt = &t
	}
	if u.LastAccessedAt != nil {
		t := *u.LastAccessedAt
		c.LastAccessedAt = &t
	}
	return &c
}

func copyUser(u *model.User) *model.User {
	c := *u
	if u.Name != nil {
		n := *u.Name
		c.Name = &n
	}
	return &c
}

func (m *Memory) insertURLLocked(u *model.URL) error {
	if _, ok := m.codes[u.ShortCode]; ok {
		return fmt.Errorf("short code %q: %w", u.ShortCode, ErrConflict)
	}
	m.lastURLID++
	u.ID = m.lastURLID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.urls[u.ID] = copyURL(u)
	m.codes[u.ShortCode] = u.ID
	return nil
}

// InsertURL сохраняет ссылку.
func (m *Memory) InsertURL(_ context.Context, u *model.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertURLLocked(u)
}

// InsertURLs вставляет записи по одной. При конфликте уже вставленные записи остаются.
func (m *Memory) InsertURLs(_ context.Context, urls []*model.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range urls {
		if err := m.insertURLLocked(u); err != nil {
			return err
		}
	}
	return nil
}

func (m *Memory) FindByShortCode(_ context.Context, code string) (*model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.codes[code]
	if !ok {
		return nil, ErrNotFound
	}
	return copyURL(m.urls[id]), nil
}

func (m *Memory) FindByUserID(_ context.Context, userID int64) ([]*model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*model.URL, 0)
	for _, u := range m.urls {
		if u.UserID == userID {
			result = append(result, copyURL(u))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *Memory) FindByID(_ context.Context, id int64) (*model.URL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.urls[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyURL(u), nil
}

func (m *Memory) UpdateClicksAndAccess(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.urls[id]
	if !ok {
		return ErrNotFound
	}
	u.Clicks++
	u.LastAccessedAt = &at
	return nil
}

func (m *Memory) UpdatePartial(_ context.Context, id int64, patch model.URLPatch) (*model.URL, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.urls[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.ExpiresAt.Set {
		u.ExpiresAt = patch.ExpiresAt.Ptr()
	}
	if patch.Password.Set {
		u.Password = patch.Password.Ptr()
	}
	return copyURL(u), nil
}

func (m *Memory) DeleteByShortCode(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.codes[code]
	if !ok {
		return ErrNotFound
	}
	delete(m.codes, code)
	delete(m.urls, id)
	return nil
}

// Ping всегда успешен.
func (m *Memory) Ping(context.Context) error {
	return nil
}

func (m *Memory) InsertUser(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.emails[u.Email]; ok {
		return fmt.Errorf("email %q: %w", u.Email, ErrConflict)
	}
	if _, ok := m.apiKeys[u.APIKey]; ok {
		return fmt.Errorf("api key: %w", ErrConflict)
	}
	m.lastUserID++
	u.ID = m.lastUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	m.users[u.ID] = copyUser(u)
	m.emails[u.Email] = u.ID
	m.apiKeys[u.APIKey] = u.ID
	return nil
}

func (m *Memory) FindUsersByEmail(_ context.Context, email string) ([]*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.emails[email]
	if !ok {
		return []*model.User{}, nil
	}
	return []*model.User{copyUser(m.users[id])}, nil
}

func (m *Memory) FindUserByAPIKey(_ context.Context, apiKey string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.apiKeys[apiKey]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(m.users[id]), nil
}

func (m *Memory) AppendRequestLog(_ context.Context, entry model.RequestLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, entry)
	return nil
}

// RequestLogs копия журнала запросов.
func (m *Memory) RequestLogs() []model.RequestLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.RequestLog, len(m.logs))
	copy(out, m.logs)
	return out
}

// Close ничего не делает.
func (m *Memory) Close() {}
