package entities

import "time"

// IdentityKey - ключ единственной записи сохраненной сессии
const IdentityKey = "current"

// StoredIdentity - сохраненные между запусками данные сессии
type StoredIdentity struct {
	Key       string    `gorm:"primaryKey;not null" json:"key"`
	Token     string    `gorm:"not null" json:"token"`
	Username  string    `gorm:"not null" json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
