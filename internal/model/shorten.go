package model

import "time"

// ShortenRequest тело запроса на сокращение URL.
type ShortenRequest struct {
	URL       string  `json:"url" validate:"required,url"`
	ShortCode *string `json:"shortCode,omitempty" validate:"omitempty,min=1,max=255"`
	ExpiresAt *string `json:"expiresAt,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=1"`
}

// ShortenResponse ответ с созданной ссылкой.
type ShortenResponse struct {
	ID        int64      `json:"id"`
	URL       string     `json:"url"`
	ShortCode string     `json:"short_code"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// NewShortenResponse строит ответ по сохранённой ссылке.
func NewShortenResponse(u *URL) ShortenResponse {
	return ShortenResponse{
		ID:        u.ID,
		URL:       u.URL,
		ShortCode: u.ShortCode,
		ExpiresAt: u.ExpiresAt,
	}
}

// UpdateURLRequest тело PATCH-запроса. Отсутствующее поле не меняется, null очищает.
type UpdateURLRequest struct {
	ExpiresAt Nullable[string] `json:"expiresAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Password  Nullable[string] `json:"password" validate:"omitempty,min=1"`
}

// RedirectQuery параметры перехода по короткому коду.
type RedirectQuery struct {
	Code     string  `json:"code" validate:"required,min=1"`
	Password *string `json:"pw"`
}
