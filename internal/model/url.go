package model

import "time"

// URL сохранённое сопоставление короткого кода и исходного адреса.
// Password хранит bcrypt-хеш и никогда не сериализуется.
type URL struct {
	ID             int64      `json:"id"`
	URL            string     `json:"url"`
	ShortCode      string     `json:"short_code"`
	UserID         int64      `json:"user_id"`
	Clicks         int64      `json:"clicks"`
	Password       *string    `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
}

// Expired сообщает, истёк ли срок жизни ссылки к моменту now.
func (u *URL) Expired(now time.Time) bool {
	return u.ExpiresAt != nil && !u.ExpiresAt.After(now)
}

// Protected сообщает, закрыта ли ссылка паролем.
func (u *URL) Protected() bool {
	return u.Password != nil && *u.Password != ""
}

// URLPatch частичное обновление ссылки. Password содержит уже готовый хеш.
type URLPatch struct {
	ExpiresAt Nullable[time.Time]
	Password  Nullable[string]
}

// Empty сообщает, что патч ничего не меняет.
func (p URLPatch) Empty() bool {
	return !p.ExpiresAt.Set && !p.Password.Set
}
