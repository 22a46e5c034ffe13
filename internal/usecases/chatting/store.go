package chatting

import (
	"errors"
	"sync"
	"time"

	"github.com/Sensei3747/Market-Intelligence/internal/domain"
	"github.com/Sensei3747/Market-Intelligence/pkg/utils"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationFull     = errors.New("conversation reached the message limit")
)

const maxConversations = 1000

// Store guarda as conversas somente em memória
type Store struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	maxMessages   int
	now           func() time.Time
	newID         func() (string, error)
}

func NewStore(maxMessages int) *Store {
	return &Store{
		conversations: make(map[string]*domain.Conversation),
		maxMessages:   maxMessages,
		now:           time.Now,
		newID:         utils.GenerateID,
	}
}

// Create abre uma conversa nova. Acima do limite a conversa menos recente é descartada.
func (s *Store) Create() (*domain.Conversation, error) {
	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.conversations) >= maxConversations {
		s.evictOldest()
	}

	now := s.now()
	conversation := &domain.Conversation{ID: id, CreatedAt: now, UpdatedAt: now}
	s.conversations[id] = conversation

	return clone(conversation), nil
}

func (s *Store) Get(id string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return clone(conversation), nil
}

// Remaining devolve quantas mensagens ainda cabem na conversa
func (s *Store) Remaining(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return 0, ErrConversationNotFound
	}
	return s.maxMessages - len(conversation.Messages), nil
}

// Append adiciona mensagens de forma atômica: ou todas cabem ou nenhuma é gravada
func (s *Store) Append(id string, messages ...domain.ChatMessage) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	if len(conversation.Messages)+len(messages) > s.maxMessages {
		return nil, ErrConversationFull
	}

	conversation.Messages = append(conversation.Messages, messages...)
	conversation.UpdatedAt = s.now()

	return clone(conversation), nil
}

func (s *Store) evictOldest() {
	var oldest *domain.Conversation
	for _, conversation := range s.conversations {
		if oldest == nil || conversation.UpdatedAt.Before(oldest.UpdatedAt) {
			oldest = conversation
		}
	}
	if oldest != nil {
		delete(s.conversations, oldest.ID)
	}
}

func clone(conversation *domain.Conversation) *domain.Conversation {
	copied := *conversation
	copied.Messages = append([]domain.ChatMessage(nil), conversation.Messages...)
	return &copied
}
