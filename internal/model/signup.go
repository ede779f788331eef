package model

// SignupRequest тело запроса на регистрацию пользователя.
type SignupRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  *string `json:"name,omitempty"`
	Tier  *Tier   `json:"tier,omitempty" validate:"omitempty,oneof=hobby enterprise"`
}

// SignupResponse единственный ответ, в котором пользователь видит свой API-ключ.
type SignupResponse struct {
	ID     int64   `json:"id"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	APIKey string  `json:"api_key"`
}

// UsersQuery параметры поиска пользователей.
type UsersQuery struct {
	Email string `json:"email" validate:"required,email"`
}

// Blacklist документ со списком отозванных ключей во внешнем KV-хранилище.
type Blacklist struct {
	BlacklistedKeys []string `json:"blacklistedKeys"`
}
