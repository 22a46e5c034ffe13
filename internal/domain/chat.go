package domain

import (
	"errors"
	"time"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation é o histórico de chat mantido em memória no processo
type Conversation struct {
	ID        string        `json:"id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type ChatRequest struct {
	ConversationID string `json:"conversation_id" validate:"omitempty,max=64"`
	Message        string `json:"message" validate:"required,max=2000"`
}

type ChatResponse struct {
	ConversationID string      `json:"conversation_id"`
	Reply          ChatMessage `json:"reply"`
}

// ErrChatRateLimited é devolvido quando o limite de perguntas por minuto foi atingido
var ErrChatRateLimited = errors.New("chat rate limit exceeded")
