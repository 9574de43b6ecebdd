package models

import (
	"time"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"uniqueIndex;not null;size:200" json:"email"`
	Name      string    `gorm:"not null;size:200" json:"name"`
	GoogleID  string    `gorm:"uniqueIndex;not null;size:100" json:"google_id"`
	AvatarURL string    `gorm:"size:500" json:"avatar_url,omitempty"`
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
