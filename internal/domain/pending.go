package domain

import "time"

// MaxHistoryMessages caps the rolling conversation history kept per user.
const MaxHistoryMessages = 20

// ChatRole identifies who produced a history message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one exchanged message kept for conversational context,
// so the model can resolve relative dates and continuations.
type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// PendingState is the per-user envelope held in the ephemeral store: the
// most recent unconfirmed candidate batch, a snapshot of the user's
// active wallets captured at extraction time, and the rolling history.
// It is TTL-bound and explicitly cleared after every confirm/reject.
type PendingState struct {
	TelegramID int64                  `json:"telegramId"`
	UserID     string                 `json:"userId"`
	Candidates []TransactionCandidate `json:"candidates"`
	Wallets    []WalletSnapshot       `json:"wallets"`
	Messages   []ChatMessage          `json:"messages"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

// AppendMessage adds a message to the rolling history, trimming to the
// newest MaxHistoryMessages entries.
func (s *PendingState) AppendMessage(role ChatRole, text string, at time.Time) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Text: text, Timestamp: at})
	if len(s.Messages) > MaxHistoryMessages {
		s.Messages = s.Messages[len(s.Messages)-MaxHistoryMessages:]
	}

	s.UpdatedAt = at
}
