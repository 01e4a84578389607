package dto

import "time"

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type MessageResponse struct {
	ID        uint      `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type ClearedResponse struct {
	Cleared int64 `json:"cleared"`
}
