package cli

import (
	"context"

	"github.com/Kipkoech854/Real-estate-management/internal/usecase"
	apperrors "github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

func (s *Shell) renderChat(ctx context.Context) error {
	conversations, err := s.svc.Chat.ListConversations(ctx, s.session.UserID)
	if err != nil {
		return err
	}
	s.session.Conversations = conversations

	s.p.Println()
	s.p.Println("=== Chat ===")
	if len(conversations) == 0 {
		s.p.Println("No conversations yet.")
	}
	for i, c := range conversations {
		s.p.Printf("%d. %s\n", i+1, c.Counterpart)
	}
	s.p.Println("n. New conversation")
	s.p.Println("q. Back")
	return nil
}

func (s *Shell) newConversation(ctx context.Context) error {
	recipient, err := s.p.AskRequired("Recipient username")
	if err != nil {
		return err
	}
	conversationID, err := s.svc.Chat.GetOrCreateConversation(ctx, s.session.UserID, recipient)
	if err != nil {
		return err
	}

	// The conversation exists from here on, so an invalid first message
	// re-asks the message alone.
	for {
		text, err := s.p.Ask("Message")
		if err != nil {
			return err
		}
		err = s.send(ctx, conversationID, text)
		if err == nil {
			break
		}
		if !apperrors.Is(err, apperrors.CodeValidation) {
			return err
		}
		s.p.Println(apperrors.Message(err))
	}
	s.p.Printf("Message sent to %s.\n", recipient)
	return s.thread(ctx, conversationID, recipient)
}

func (s *Shell) openConversation(ctx context.Context, index int) error {
	c := s.session.Conversations[index]
	return s.thread(ctx, c.ID, c.Counterpart)
}

// thread prints the conversation and keeps reading replies until a blank
// line.
func (s *Shell) thread(ctx context.Context, conversationID, counterpart string) error {
	for {
		s.p.Printf("\n--- Conversation with %s ---\n", counterpart)
		if err := s.printMessages(ctx, conversationID); err != nil {
			return err
		}

		reply, err := s.p.Ask("Reply (blank to go back)")
		if err != nil || reply == "" {
			return err
		}
		if err := s.send(ctx, conversationID, reply); err != nil {
			return err
		}
	}
}

func (s *Shell) printMessages(ctx context.Context, conversationID string) error {
	empty := true
	for line, err := range s.svc.Chat.Messages(ctx, conversationID) {
		if err != nil {
			return err
		}
		empty = false
		s.p.printChatLine(line)
	}
	if empty {
		s.p.Println("No messages yet.")
	}
	return nil
}

func (s *Shell) send(ctx context.Context, conversationID, text string) error {
	attachments, err := s.p.AskList("Attachment URLs, comma separated (optional)")
	if err != nil {
		return err
	}
	_, err = s.svc.Chat.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conversationID,
		SenderID:       s.session.UserID,
		Text:           text,
		Attachments:    attachments,
	})
	return err
}
