package services

import (
	"fmt"
	"regexp"
	"strconv"

	"finbot/services/logger"
	"finbot/utils"

	"github.com/olahol/melody"
)

const (
	greetingReply = "👋 Hi there! Want to check your expenses or add a new one?"
	apologyReply  = "Couldn't analyze that right now."
)

// greetingPattern matches anywhere in the message, so a greeting wins even
// when the same message also carries an expense phrase.
var greetingPattern = regexp.MustCompile(`(?i)(hi|hello|hey|hola|hii|hlo|hai)`)

// ChatService decides the bot reply for each inbound message. It holds no
// per-conversation state; everything durable lives in the stores.
type ChatService struct {
	Messages   *MessageService
	Expenses   *ExpenseService
	Completion *CompletionClient
	Melody     *melody.Melody
	Logger     logger.Logger
}

type ChatServiceOptions struct {
	Messages   *MessageService
	Expenses   *ExpenseService
	Completion *CompletionClient
	Melody     *melody.Melody
	Logger     logger.Logger
}

func NewChatService(opts ChatServiceOptions) *ChatService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ChatService{
		Messages:   opts.Messages,
		Expenses:   opts.Expenses,
		Completion: opts.Completion,
		Melody:     opts.Melody,
		Logger:     l,
	}
}

// HandleMessage runs one chat turn: greeting, expense report, or delegated
// completion, in that order. The turn pair (user message, bot reply) is
// always persisted; a persistence failure is returned so the caller can
// surface a server error instead of a fabricated reply.
func (s *ChatService) HandleMessage(userID uint, message string) (string, error) {
	reply, err := s.decideReply(userID, message)
	if err != nil {
		return "", err
	}

	if err := s.Messages.AppendTurn(userID, message, reply); err != nil {
		return "", err
	}

	BroadcastToUser(s.Melody, userID, WSEvent{Type: "chat", Data: reply})
	return reply, nil
}

func (s *ChatService) decideReply(userID uint, message string) (string, error) {
	if greetingPattern.MatchString(message) {
		return greetingReply, nil
	}

	if extracted := ExtractExpense(message); extracted != nil {
		if err := s.Expenses.AppendExtracted(userID, extracted); err != nil {
			return "", err
		}
		amount := strconv.FormatFloat(extracted.Amount, 'f', -1, 64)
		return fmt.Sprintf("✅ Noted! You spent ₹%s on %s.", amount, extracted.Description), nil
	}

	reply, err := s.Completion.Complete(message)
	if err != nil {
		// Fail closed: the chat stays alive with a fixed apology and the
		// raw failure goes to the operator log only.
		s.Logger.Error("completion call failed for user %d: %v", userID, err)
		utils.LogError("completion call failed for user %d: %v", userID, err)
		return apologyReply, nil
	}
	return reply, nil
}
