package chatting

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/internal/usecases/reporting"
	"github.com/Sensei3747/Market-Intelligence/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Asker responde perguntas sobre o período filtrado
type Asker interface {
	Ask(ctx context.Context, query reporting.FilterQuery, question string) (string, error)
}

type Service struct {
	store *Store
	asker Asker
}

func NewService(store *Store, asker Asker) *Service {
	return &Service{store: store, asker: asker}
}

// Send grava a pergunta e a resposta do assistente na conversa. Quando o ID vem vazio a conversa
// só é criada depois que o assistente responde, assim uma falha não deixa conversa vazia no store
func (s *Service) Send(ctx context.Context, request domain.ChatRequest, query reporting.FilterQuery) (*domain.ChatResponse, error) {
	logger := log.ForContext(ctx)

	conversationID := strings.TrimSpace(request.ConversationID)
	remaining := s.store.maxMessages
	if conversationID != "" {
		var err error
		if remaining, err = s.store.Remaining(conversationID); err != nil {
			return nil, err
		}
	}
	if remaining < 2 {
		return nil, ErrConversationFull
	}

	question := domain.ChatMessage{Role: domain.ChatRoleUser, Content: request.Message, CreatedAt: s.store.now()}

	reply, err := s.asker.Ask(ctx, query, request.Message)
	if err != nil {
		return nil, err
	}

	if conversationID == "" {
		conversation, err := s.store.Create()
		if err != nil {
			return nil, errors.Wrap(err, "creating conversation")
		}
		conversationID = conversation.ID
		logger.WithField("conversation_id", conversationID).Debug("chatting: conversation created")
	}

	answer := domain.ChatMessage{Role: domain.ChatRoleAssistant, Content: reply, CreatedAt: s.store.now()}
	if _, err := s.store.Append(conversationID, question, answer); err != nil {
		return nil, err
	}

	logger.WithField("conversation_id", conversationID).Info("chatting: question answered")

	return &domain.ChatResponse{ConversationID: conversationID, Reply: answer}, nil
}

func (s *Service) Conversation(id string) (*domain.Conversation, error) {
	return s.store.Get(id)
}
