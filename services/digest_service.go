package services

import (
	"fmt"
	"strconv"
	"time"

	"finbot/models"

	"github.com/olahol/melody"
)

// UsersWithExpensesIn lists the users who recorded at least one expense
// inside [start, end).
func (s *ExpenseService) UsersWithExpensesIn(start, end time.Time) ([]uint, error) {
	var userIDs []uint
	err := s.DB.Model(&models.Expense{}).
		Where("date >= ? AND date < ?", start, end).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

// BroadcastDailyDigest pushes yesterday's spend total to every user who
// recorded an expense yesterday. Digests go over the websocket only;
// chat messages are written exclusively in turn pairs, so nothing is
// persisted here.
func (s *ExpenseService) BroadcastDailyDigest(m *melody.Melody) error {
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -1)

	userIDs, err := s.UsersWithExpensesIn(start, end)
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		total, err := s.TotalForRange(userID, start, end)
		if err != nil {
			s.Logger.Error("digest total for user %d: %v", userID, err)
			continue
		}
		if total <= 0 {
			continue
		}

		amount := strconv.FormatFloat(total, 'f', -1, 64)
		BroadcastToUser(m, userID, WSEvent{
			Type: "digest",
			Data: fmt.Sprintf("📊 You spent ₹%s yesterday.", amount),
		})
	}

	s.Logger.Info("daily digest sent to %d users", len(userIDs))
	return nil
}
