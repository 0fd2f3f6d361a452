package repository

import (
	"context"
	"encoding/json"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Kipkoech854/Real-estate-management/internal/domain/entity"
	"github.com/Kipkoech854/Real-estate-management/internal/domain/repository"
	"github.com/Kipkoech854/Real-estate-management/pkg/errors"
)

// DBTX is the part of *pgxpool.Pool the chat repository needs.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgChatRepository struct {
	db DBTX
}

func NewPgChatRepository(db DBTX) repository.ChatRepository {
	return &pgChatRepository{db: db}
}

func (r *pgChatRepository) CreateConversation(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	conversation.Participant1, conversation.Participant2 = entity.CanonicalPair(conversation.Participant1, conversation.Participant2)

	err := r.db.QueryRow(ctx, `
		INSERT INTO conversations (id, participant_1, participant_2, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at
	`, conversation.ID, conversation.Participant1, conversation.Participant2, time.Now().UTC()).
		Scan(&conversation.ID, &conversation.CreatedAt)
	if err != nil {
		return classify("Conversation", "create conversation", err)
	}

	return nil
}

func (r *pgChatRepository) GetConversationByID(ctx context.Context, id string) (*entity.Conversation, error) {
	var c entity.Conversation
	err := r.db.QueryRow(ctx, `
		SELECT id::text, participant_1::text, participant_2::text, created_at
		FROM conversations
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Participant1, &c.Participant2, &c.CreatedAt)
	if err != nil {
		return nil, classify("Conversation", "get conversation", err)
	}
	return &c, nil
}

func (r *pgChatRepository) FindConversationByPair(ctx context.Context, participant1, participant2 string) (*entity.Conversation, error) {
	p1, p2 := entity.CanonicalPair(participant1, participant2)

	var c entity.Conversation
	err := r.db.QueryRow(ctx, `
		SELECT id::text, participant_1::text, participant_2::text, created_at
		FROM conversations
		WHERE participant_1 = $1 AND participant_2 = $2
	`, p1, p2).Scan(&c.ID, &c.Participant1, &c.Participant2, &c.CreatedAt)
	if err != nil {
		return nil, classify("Conversation", "find conversation", err)
	}
	return &c, nil
}

func (r *pgChatRepository) ListConversationsByUser(ctx context.Context, userID string) ([]entity.ConversationSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id::text, u.id::text, u.username
		FROM conversations c
		JOIN users u ON u.id = CASE WHEN c.participant_1 = $1 THEN c.participant_2 ELSE c.participant_1 END
		WHERE c.participant_1 = $1 OR c.participant_2 = $1
		ORDER BY c.created_at, c.id
	`, userID)
	if err != nil {
		return nil, classify("Conversation", "list conversations", err)
	}
	defer rows.Close()

	summaries := []entity.ConversationSummary{}
	for rows.Next() {
		var s entity.ConversationSummary
		if err := rows.Scan(&s.ID, &s.CounterpartID, &s.Counterpart); err != nil {
			return nil, classify("Conversation", "scan conversation", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("Conversation", "list conversations", err)
	}

	return summaries, nil
}

func (r *pgChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now().UTC()

	attachments, err := message.Attachments.Value()
	if err != nil {
		return errors.Internal("Failed to encode attachments", err)
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO chats (id, conversation_id, sender_id, message, attachments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, message.ID, message.ConversationID, message.SenderID, message.Text, attachments, message.CreatedAt).
		Scan(&message.ID)
	if err != nil {
		return classify("Message", "create message", err)
	}

	return nil
}

func (r *pgChatRepository) StreamMessages(ctx context.Context, conversationID string) iter.Seq2[entity.ChatLine, error] {
	return func(yield func(entity.ChatLine, error) bool) {
		rows, err := r.db.Query(ctx, `
			SELECT u.username, c.message, c.attachments, c.created_at
			FROM chats c
			JOIN users u ON u.id = c.sender_id
			WHERE c.conversation_id = $1
			ORDER BY c.created_at ASC, c.id ASC
		`, conversationID)
		if err != nil {
			yield(entity.ChatLine{}, classify("Message", "stream messages", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				line entity.ChatLine
				raw  []byte
			)
			if err := rows.Scan(&line.Sender, &line.Text, &raw, &line.CreatedAt); err != nil {
				yield(entity.ChatLine{}, classify("Message", "scan message", err))
				return
			}
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &line.Attachments); err != nil {
					yield(entity.ChatLine{}, errors.Internal("Failed to decode attachments", err))
					return
				}
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(entity.ChatLine{}, classify("Message", "stream messages", err))
		}
	}
}
