package usecase

import (
	"context"
	"iter"
	"strings"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
	"github.com/Kipkoech854/Real-estate-management/pkg/logger"
	"github.com/Kipkoech854/Real-estate-management/pkg/validation"
)

// ConversationUseCase is the conversation store: it owns two-party
// conversations and the messages inside them.
type ConversationUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewConversationUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ConversationUseCase {
	return &ConversationUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

type SendMessageInput struct {
	ConversationID string   `label:"conversation" validate:"required"`
	SenderID       string   `label:"sender" validate:"required"`
	Text           string   `label:"message" validate:"max=4000"`
	Attachments    []string `label:"attachments" validate:"max=20"`
}

// ListConversations returns every conversation userID takes part in, in
// the order they were created. An empty slice means none yet.
func (uc *ConversationUseCase) ListConversations(ctx context.Context, userID string) ([]entity.ConversationSummary, error) {
	summaries, err := uc.chatRepo.ListConversationsByUser(ctx, userID)
	if err != nil {
		logger.Error("ListConversations Error: user %s: %v", userID, err)
		return nil, err
	}
	return summaries, nil
}

// GetOrCreateConversation returns the id of the conversation between userID
// and the user called username, creating it on first contact. Both
// argument orders map to the same row.
func (uc *ConversationUseCase) GetOrCreateConversation(ctx context.Context, userID, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", errors.Validation("recipient username is required", nil)
	}

	recipient, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errors.CodeNotFound) {
			return "", errors.NotFound("User "+username, err)
		}
		logger.Error("GetOrCreateConversation Error: resolving %q: %v", username, err)
		return "", err
	}

	if recipient.ID == userID {
		return "", errors.Validation("You cannot start a conversation with yourself", nil)
	}

	p1, p2 := entity.CanonicalPair(userID, recipient.ID)

	existing, err := uc.chatRepo.FindConversationByPair(ctx, p1, p2)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		logger.Error("GetOrCreateConversation Error: lookup %s/%s: %v", p1, p2, err)
		return "", err
	}

	conversation := &entity.Conversation{Participant1: p1, Participant2: p2}
	err = uc.chatRepo.CreateConversation(ctx, conversation)
	if err == nil {
		logger.Info("conversation %s created between %s and %s", conversation.ID, p1, p2)
		return conversation.ID, nil
	}
	if !errors.Is(err, errors.CodeConflict) {
		logger.Error("GetOrCreateConversation Error: insert %s/%s: %v", p1, p2, err)
		return "", err
	}

	// Another writer created the pair between our lookup and insert.
	existing, err = uc.chatRepo.FindConversationByPair(ctx, p1, p2)
	if err != nil {
		logger.Error("GetOrCreateConversation Error: refetch after conflict %s/%s: %v", p1, p2, err)
		return "", err
	}
	return existing.ID, nil
}

// SendMessage appends a message stamped with the current time and returns
// its id. Attachments are kept in the order given.
func (uc *ConversationUseCase) SendMessage(ctx context.Context, input SendMessageInput) (string, error) {
	if err := validation.Struct(input); err != nil {
		return "", err
	}

	text := strings.TrimSpace(input.Text)
	attachments := make(entity.StringList, 0, len(input.Attachments))
	for _, a := range input.Attachments {
		if a = strings.TrimSpace(a); a != "" {
			attachments = append(attachments, a)
		}
	}
	if text == "" && len(attachments) == 0 {
		return "", errors.Validation("message cannot be empty", nil)
	}

	conversation, err := uc.chatRepo.GetConversationByID(ctx, input.ConversationID)
	if err != nil {
		logger.Error("SendMessage Error: conversation %s: %v", input.ConversationID, err)
		return "", err
	}
	if conversation.Participant1 != input.SenderID && conversation.Participant2 != input.SenderID {
		return "", errors.Forbidden("You are not part of this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: input.ConversationID,
		SenderID:       input.SenderID,
		Text:           text,
		Attachments:    attachments,
	}
	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		logger.Error("SendMessage Error: conversation %s: %v", input.ConversationID, err)
		return "", err
	}

	logger.Debug("message %s sent in conversation %s", message.ID, input.ConversationID)
	return message.ID, nil
}

// Messages returns the conversation's messages oldest first. The sequence
// is lazy and can be ranged over again to see newer messages.
func (uc *ConversationUseCase) Messages(ctx context.Context, conversationID string) iter.Seq2[entity.ChatLine, error] {
	if strings.TrimSpace(conversationID) == "" {
		return func(yield func(entity.ChatLine, error) bool) {
			yield(entity.ChatLine{}, errors.Validation("conversation is required", nil))
		}
	}
	return uc.chatRepo.StreamMessages(ctx, conversationID)
}
