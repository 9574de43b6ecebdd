package models

import (
	"time"
)

// Client is a named billing counterparty a user logs hours against.
// Names are unique per user, compared case-insensitively.
type Client struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `gorm:"not null;index;type:uuid" json:"user_id"`
	Name      string    `gorm:"not null;size:200" json:"name"`
}

// TableName keeps the remote table name used by the original schema.
func (Client) TableName() string {
	return "user_clients"
}
