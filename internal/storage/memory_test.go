package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Totarae/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryInsertAndFind(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u := &model.URL{URL: "https://example.com", ShortCode: "abc", UserID: 1}
	require.NoError(t, m.InsertURL(ctx, u))
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := m.FindByShortCode(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got.URL)

	byID, err := m.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", byID.ShortCode)

	_, err = m.FindByShortCode(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryShortCodeConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://a.io", ShortCode: "dup", UserID: 1}))
	err := m.InsertURL(ctx, &model.URL{URL: "https://b.io", ShortCode: "dup", UserID: 2})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryInsertURLsPartialOnConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://a.io", ShortCode: "taken", UserID: 1}))

	err := m.InsertURLs(ctx, []*model.URL{
		{URL: "https://b.io", ShortCode: "fresh", UserID: 1},
		{URL: "https://c.io", ShortCode: "taken", UserID: 1},
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = m.FindByShortCode(ctx, "fresh")
	assert.NoError(t, err)
}

func TestMemoryFindByUserIDOrdered(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	for _, code := range []string{"a", "b", "c"} {
		require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://x.io", ShortCode: code, UserID: 7}))
	}
	require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://y.io", ShortCode: "other", UserID: 8}))

	urls, err := m.FindByUserID(ctx, 7)
	require.NoError(t, err)
	require.Len(t, urls, 3)
	assert.Equal(t, "a", urls[0].ShortCode)
	assert.Equal(t, "c", urls[2].ShortCode)

	none, err := m.FindByUserID(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://x.io", ShortCode: "c", UserID: 1}))

	got, err := m.FindByShortCode(ctx, "c")
	require.NoError(t, err)
	got.Clicks = 100

	again, err := m.FindByShortCode(ctx, "c")
	require.NoError(t, err)
	assert.Zero(t, again.Clicks)
}

func TestMemoryClicksConcurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	u := &model.URL{URL: "https://x.io", ShortCode: "hot", UserID: 1}
	require.NoError(t, m.InsertURL(ctx, u))

	const n = 50
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.UpdateClicksAndAccess(ctx, u.ID, at))
		}()
	}
	wg.Wait()

	got, err := m.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), got.Clicks)
	require.NotNil(t, got.LastAccessedAt)
	assert.True(t, at.Equal(*got.LastAccessedAt))

	assert.ErrorIs(t, m.UpdateClicksAndAccess(ctx, 999, at), ErrNotFound)
}

func TestMemoryUpdatePartial(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	hash := "hash"
	u := &model.URL{URL: "https://x.io", ShortCode: "p", UserID: 1, ExpiresAt: &exp, Password: &hash}
	require.NoError(t, m.InsertURL(ctx, u))

	got, err := m.UpdatePartial(ctx, u.ID, model.URLPatch{})
	require.NoError(t, err)
	assert.NotNil(t, got.ExpiresAt)
	assert.NotNil(t, got.Password)

	got, err = m.UpdatePartial(ctx, u.ID, model.URLPatch{ExpiresAt: model.Null[time.Time]()})
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
	assert.NotNil(t, got.Password)

	got, err = m.UpdatePartial(ctx, u.ID, model.URLPatch{Password: model.NullableOf("new-hash")})
	require.NoError(t, err)
	require.NotNil(t, got.Password)
	assert.Equal(t, "new-hash", *got.Password)

	_, err = m.UpdatePartial(ctx, 999, model.URLPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://x.io", ShortCode: "d", UserID: 1}))

	require.NoError(t, m.DeleteByShortCode(ctx, "d"))
	_, err := m.FindByShortCode(ctx, "d")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.DeleteByShortCode(ctx, "d"), ErrNotFound)

	// код освобождается после удаления
	assert.NoError(t, m.InsertURL(ctx, &model.URL{URL: "https://y.io", ShortCode: "d", UserID: 2}))
}

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u := &model.User{Email: "bugs@acme.io", APIKey: "key-1", Tier: model.TierHobby}
	require.NoError(t, m.InsertUser(ctx, u))
	assert.Equal(t, int64(1), u.ID)

	err := m.InsertUser(ctx, &model.User{Email: "bugs@acme.io", APIKey: "key-2"})
	assert.ErrorIs(t, err, ErrConflict)
	err = m.InsertUser(ctx, &model.User{Email: "daffy@acme.io", APIKey: "key-1"})
	assert.ErrorIs(t, err, ErrConflict)

	users, err := m.FindUsersByEmail(ctx, "bugs@acme.io")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "key-1", users[0].APIKey)

	users, err = m.FindUsersByEmail(ctx, "nobody@acme.io")
	require.NoError(t, err)
	assert.Empty(t, users)

	byKey, err := m.FindUserByAPIKey(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byKey.ID)

	_, err = m.FindUserByAPIKey(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRequestLogs(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.AppendRequestLog(ctx, model.RequestLog{Method: "GET", URL: "/ping"}))
	require.NoError(t, m.AppendRequestLog(ctx, model.RequestLog{Method: "POST", URL: "/users"}))

	logs := m.RequestLogs()
	require.Len(t, logs, 2)
	assert.Equal(t, "/users", logs[1].URL)
	assert.NoError(t, m.Ping(ctx))
}
