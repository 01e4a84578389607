package services

import (
	"fmt"
	"testing"
	"time"

	"finbot/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageAppendAndList(t *testing.T) {
	svc := NewMessageService(setupTestDB(t))

	base := time.Now()
	for i := 0; i < 5; i++ {
		_, err := svc.Append(1, constants.SenderUser, fmt.Sprintf("message %d", i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	messages, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, messages, 5)

	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].Timestamp.Before(messages[i-1].Timestamp),
			"messages must come back in non-decreasing timestamp order")
	}
	assert.Equal(t, "message 0", messages[0].Text)
	assert.Equal(t, "message 4", messages[4].Text)
}

func TestMessageAppendTurn(t *testing.T) {
	svc := NewMessageService(setupTestDB(t))

	require.NoError(t, svc.AppendTurn(1, "I spent 45 on Netflix", "✅ Noted! You spent ₹45 on Netflix."))

	messages, err := svc.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, constants.SenderUser, messages[0].Sender)
	assert.Equal(t, constants.SenderBot, messages[1].Sender)
	assert.True(t, messages[1].Timestamp.After(messages[0].Timestamp),
		"bot timestamp must come after the user's")
}

func TestMessageClearIsScopedToUser(t *testing.T) {
	svc := NewMessageService(setupTestDB(t))

	require.NoError(t, svc.AppendTurn(1, "hello", "👋 Hi there! Want to check your expenses or add a new one?"))
	require.NoError(t, svc.AppendTurn(2, "hello", "👋 Hi there! Want to check your expenses or add a new one?"))

	cleared, err := svc.ClearForUser(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	mine, err := svc.ListForUser(1)
	require.NoError(t, err)
	assert.Empty(t, mine)

	theirs, err := svc.ListForUser(2)
	require.NoError(t, err)
	assert.Len(t, theirs, 2, "another user's history must be untouched")
}
