package model

import "time"

// Tier класс аккаунта, от него зависит доступ к пакетному созданию ссылок.
type Tier string

const (
	TierHobby      Tier = "hobby"
	TierEnterprise Tier = "enterprise"
)

// Valid сообщает, известен ли тариф.
func (t Tier) Valid() bool {
	return t == TierHobby || t == TierEnterprise
}

// User владелец ссылок. APIKey наружу отдаётся только при регистрации.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	APIKey    string    `json:"-"`
	Tier      Tier      `json:"tier"`
	CreatedAt time.Time `json:"created_at"`
}
