package models

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate  = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrInvalidHours = errors.New("hours must be greater than zero")
	ErrEmptyClient  = errors.New("client is required")
)

// TimeEntry is one (date, client, hours) record for a user. Entries are
// immutable after creation; the only mutation is deletion.
//
// Date is stored as a zero-padded "2006-01-02" string so that range
// filtering can compare lexicographically in both store backends.
type TimeEntry struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `gorm:"not null;index;type:uuid" json:"user_id"`
	Date        string    `gorm:"not null;size:10;index" json:"date"`
	Client      string    `gorm:"not null;size:200" json:"client"`
	Hours       float64   `gorm:"not null" json:"hours"`
	Description string    `gorm:"size:500" json:"description,omitempty"`
}

// Validate checks the creation invariants before any store write.
func (e *TimeEntry) Validate() error {
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Hours <= 0 {
		return ErrInvalidHours
	}
	if e.Client == "" {
		return ErrEmptyClient
	}
	return nil
}
