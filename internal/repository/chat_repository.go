package repository

import (
	"context"
	"encoding/json"

	"github.com/KartikSaxena19/LearnILmWorld/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ChatRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatRepository) Create(ctx context.Context, session *models.ChatSession) error {
	conversation, err := json.Marshal(session.Conversation)
	if err != nil {
		return err
	}
	userContext, err := json.Marshal(session.UserContext)
	if err != nil {
		return err
	}

	query := squirrel.Insert("chatbot_sessions").
		Columns("id", "session_id", "user_type", "language", "conversation", "user_context", "created_at", "updated_at").
		Values(session.ID, session.SessionID, session.UserType, session.Language, conversation, userContext, session.CreatedAt, session.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ChatRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	query := squirrel.Select("id", "session_id", "user_type", "language", "conversation", "user_context", "created_at", "updated_at").
		From("chatbot_sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		session      models.ChatSession
		conversation []byte
		userContext  []byte
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&session.ID, &session.SessionID, &session.UserType, &session.Language,
		&conversation, &userContext, &session.CreatedAt, &session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(conversation, &session.Conversation); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(userContext, &session.UserContext); err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *ChatRepository) Update(ctx context.Context, session *models.ChatSession) error {
	conversation, err := json.Marshal(session.Conversation)
	if err != nil {
		return err
	}
	userContext, err := json.Marshal(session.UserContext)
	if err != nil {
		return err
	}

	query := squirrel.Update("chatbot_sessions").
		Set("conversation", conversation).
		Set("user_context", userContext).
		Set("user_type", session.UserType).
		Set("language", session.Language).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"session_id": session.SessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ChatRepository) Delete(ctx context.Context, sessionID string) error {
	query := squirrel.Delete("chatbot_sessions").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
