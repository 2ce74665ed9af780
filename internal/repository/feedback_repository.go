package repository

import (
	"context"

	"github.com/KartikSaxena19/LearnILmWorld/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FeedbackRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFeedbackRepository(db *pgxpool.Pool, logger *zap.Logger) *FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	query := squirrel.Insert("feedback").
		Columns("id", "name", "email", "category", "message", "created_at").
		Values(feedback.ID, feedback.Name, feedback.Email, feedback.Category, feedback.Message, feedback.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FeedbackRepository) List(ctx context.Context) ([]*models.Feedback, error) {
	query := squirrel.Select("id", "name", "email", "category", "message", "created_at").
		From("feedback").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(
			&fb.ID, &fb.Name, &fb.Email, &fb.Category, &fb.Message, &fb.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &fb)
	}

	return items, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("feedback").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
