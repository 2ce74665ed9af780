package repository

import (
	"context"

	"github.com/KartikSaxena19/LearnILmWorld/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type CareerRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCareerRepository(db *pgxpool.Pool, logger *zap.Logger) *CareerRepository {
	return &CareerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CareerRepository) Create(ctx context.Context, app *models.CareerApplication) error {
	query := squirrel.Insert("career_applications").
		Columns("id", "name", "education", "role", "email", "phone", "created_at").
		Values(app.ID, app.Name, app.Education, app.Role, app.Email, app.Phone, app.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CareerRepository) List(ctx context.Context) ([]*models.CareerApplication, error) {
	query := squirrel.Select("id", "name", "education", "role", "email", "phone", "created_at").
		From("career_applications").
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

	var apps []*models.CareerApplication
	for rows.Next() {
		var app models.CareerApplication
		if err := rows.Scan(
			&app.ID, &app.Name, &app.Education, &app.Role, &app.Email, &app.Phone, &app.CreatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, &app)
	}

	return apps, nil
}
