package repository

import (
	"context"
	"iter"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
)

type ChatRepository interface {
	// Conversation methods
	CreateConversation(ctx context.Context, conversation *entity.Conversation) error
	GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error)
	FindConversationByPair(ctx context.Context, participant1, participant2 string) (*entity.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID string) ([]entity.ConversationSummary, error)

	// Message methods
	CreateMessage(ctx context.Context, message *entity.Message) error
	// StreamMessages yields the conversation's messages oldest first. Each
	// range over the result runs a fresh query.
	StreamMessages(ctx context.Context, conversationID string) iter.Seq2[entity.ChatLine, error]
}
