package usecase

import (
	"strings"
	"sync"
	"time"

	"chat-service/internal/domain"
)

// Sender tag for messages originating from the account owner.
const senderUser = "userA"

// ChatUsecase keeps each user's conversation in memory. Nothing is persisted
// and nothing leaves the process; restarting the service empties every chat.
type ChatUsecase struct {
	mu            sync.Mutex
	conversations map[string][]domain.Message
	lastID        int64
}

func NewChatUsecase() *ChatUsecase {
	return &ChatUsecase{conversations: make(map[string][]domain.Message)}
}

// Send appends a message to the user's conversation. Blank or whitespace-only
// text is ignored and reported as not sent.
func (uc *ChatUsecase) Send(userID, text string) (*domain.Message, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id

	msg := domain.Message{ID: id, Text: text, Sender: senderUser}
	uc.conversations[userID] = append(uc.conversations[userID], msg)
	return &msg, true
}

// Messages returns a copy of the user's conversation in send order.
func (uc *ChatUsecase) Messages(userID string) []domain.Message {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	msgs := uc.conversations[userID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Clear drops a user's conversation.
func (uc *ChatUsecase) Clear(userID string) {
	uc.mu.Lock()
	delete(uc.conversations, userID)
	uc.mu.Unlock()
}
