package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/KartikSaxena19/LearnILmWorld/internal/models"
	"github.com/KartikSaxena19/LearnILmWorld/internal/repository"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/auth"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/config"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/logger"
	"github.com/KartikSaxena19/LearnILmWorld/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'student',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chatbot_sessions (
		id UUID PRIMARY KEY,
		session_id VARCHAR(64) NOT NULL UNIQUE,
		user_type VARCHAR(20) NOT NULL DEFAULT 'guest',
		language VARCHAR(8) NOT NULL DEFAULT 'en',
		conversation JSONB NOT NULL DEFAULT '[]',
		user_context JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		category VARCHAR(50) NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS career_applications (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		education VARCHAR(255) NOT NULL,
		role VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chatbot_sessions_session_id ON chatbot_sessions (session_id)`,
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}
	appLogger.Info("Schema created")

	if err := seedAdmin(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedAdmin creates the default admin account when no admin exists yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD or fall back to dev
// defaults.
func seedAdmin(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	userRepo := repository.NewUserRepository(db, appLogger)

	email := getenv("ADMIN_EMAIL", "admin@learnilmworld.com")
	password := getenv("ADMIN_PASSWORD", "admin12345")

	if existing, _ := userRepo.GetByEmail(ctx, email); existing != nil {
		appLogger.Info("Admin user already exists, skipping", zap.String("email", email))
		return nil
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &models.User{
		ID:        uuid.New(),
		Name:      "Admin",
		Email:     email,
		Password:  hashed,
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	appLogger.Info("Admin user created", zap.String("email", email))
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
