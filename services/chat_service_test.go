package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finbot/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestChatService(t *testing.T, completionURL string) (*ChatService, *gorm.DB) {
	db := setupTestDB(t)

	completion := &CompletionClient{
		BaseURL:    completionURL,
		APIKey:     "test-key",
		HTTPClient: http.DefaultClient,
	}

	chat := NewChatService(ChatServiceOptions{
		Messages:   NewMessageService(db),
		Expenses:   NewExpenseService(ExpenseServiceOptions{DB: db}),
		Completion: completion,
	})
	return chat, db
}

func completionStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleMessageGreeting(t *testing.T) {
	chat, _ := newTestChatService(t, "http://unused.invalid")

	reply, err := chat.HandleMessage(1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "👋 Hi there! Want to check your expenses or add a new one?", reply)

	messages, err := chat.Messages.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constants.SenderUser, messages[0].Sender)
	assert.Equal(t, "hello", messages[0].Text)
	assert.Equal(t, constants.SenderBot, messages[1].Sender)
}

// A greeting anywhere in the message wins over everything, expense phrase
// included.
func TestHandleMessageGreetingBeatsExpense(t *testing.T) {
	chat, _ := newTestChatService(t, "http://unused.invalid")

	reply, err := chat.HandleMessage(1, "hey, I spent 100 on pizza")
	require.NoError(t, err)
	assert.Equal(t, "👋 Hi there! Want to check your expenses or add a new one?", reply)

	expenses, err := chat.Expenses.ListForUser(1, nil)
	require.NoError(t, err)
	assert.Empty(t, expenses, "greeting must skip expense extraction")
}

func TestHandleMessageExpense(t *testing.T) {
	chat, _ := newTestChatService(t, "http://unused.invalid")

	reply, err := chat.HandleMessage(1, "I spent 45 on Netflix")
	require.NoError(t, err)
	assert.Equal(t, "✅ Noted! You spent ₹45 on Netflix.", reply)

	expenses, err := chat.Expenses.ListForUser(1, nil)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 45.0, expenses[0].Amount)
	assert.Equal(t, constants.CategoryEntertainment, expenses[0].Category)
	assert.Equal(t, "Netflix", expenses[0].Description)

	messages, err := chat.Messages.ListForUser(1)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, constants.SenderUser, messages[0].Sender)
	assert.Equal(t, constants.SenderBot, messages[1].Sender)
	assert.Equal(t, reply, messages[1].Text)
}

func TestHandleMessageDelegatesToCompletion(t *testing.T) {
	srv := completionStub(t, http.StatusOK,
		`{"choices":[{"message":{"content":"Try the 50/30/20 rule."}}]}`)
	chat, _ := newTestChatService(t, srv.URL)

	reply, err := chat.HandleMessage(1, "any budget advice?")
	require.NoError(t, err)
	assert.Equal(t, "Try the 50/30/20 rule.", reply)

	messages, err := chat.Messages.ListForUser(1)
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

// Upstream failures degrade to the fixed apology; the turn is still
// recorded and no error reaches the caller.
func TestHandleMessageCompletionFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"malformed body", http.StatusOK, "not json"},
		{"empty choices", http.StatusOK, `{"choices":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionStub(t, tt.status, tt.body)
			chat, _ := newTestChatService(t, srv.URL)

			reply, err := chat.HandleMessage(1, "any budget advice?")
			require.NoError(t, err)
			assert.Equal(t, "Couldn't analyze that right now.", reply)

			messages, err := chat.Messages.ListForUser(1)
			require.NoError(t, err)
			assert.Len(t, messages, 2, "the turn must still be persisted")
		})
	}
}

// A matched amount of 0 still answers the user but stores nothing.
func TestHandleMessageZeroAmountExpense(t *testing.T) {
	chat, _ := newTestChatService(t, "http://unused.invalid")

	reply, err := chat.HandleMessage(1, "paid 0 on snacks")
	require.NoError(t, err)
	assert.Equal(t, "✅ Noted! You spent ₹0 on snacks.", reply)

	expenses, err := chat.Expenses.ListForUser(1, nil)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}
