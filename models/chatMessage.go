package models

import "time"

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Sender    string    `gorm:"not null" json:"sender"` // "user" or "bot"
	Text      string    `gorm:"not null" json:"text"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}
