package services

import (
	"time"

	"finbot/constants"
	"finbot/models"

	"gorm.io/gorm"
)

// MessageService owns the per-user chat message log.
type MessageService struct {
	DB *gorm.DB
}

func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

// Append durably records a single chat message.
func (s *MessageService) Append(userID uint, sender string, text string, timestamp time.Time) (uint, error) {
	message := models.ChatMessage{
		UserID:    userID,
		Sender:    sender,
		Text:      text,
		Timestamp: timestamp,
	}
	if err := s.DB.Create(&message).Error; err != nil {
		return 0, err
	}
	return message.ID, nil
}

// AppendTurn records one conversational turn: the user message first, the
// bot reply second, with the bot timestamp strictly after the user's.
func (s *MessageService) AppendTurn(userID uint, userText string, botText string) error {
	userTime := time.Now()
	botTime := userTime.Add(time.Millisecond)

	if _, err := s.Append(userID, constants.SenderUser, userText, userTime); err != nil {
		return err
	}
	if _, err := s.Append(userID, constants.SenderBot, botText, botTime); err != nil {
		return err
	}
	return nil
}

// ListForUser returns a user's messages in ascending timestamp order,
// ties broken by insertion order.
func (s *MessageService) ListForUser(userID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := s.DB.Where("user_id = ?", userID).
		Order("timestamp asc").
		Order("id asc").
		Find(&messages).Error
	return messages, err
}

// ClearForUser deletes a user's whole chat history and reports how many
// records were removed. Other users' logs are untouched.
func (s *MessageService) ClearForUser(userID uint) (int64, error) {
	result := s.DB.Where("user_id = ?", userID).Delete(&models.ChatMessage{})
	return result.RowsAffected, result.Error
}
