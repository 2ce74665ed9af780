package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FeedbackCategoryBug     = "Bug Report"
	FeedbackCategoryFeature = "Feature Request"
	FeedbackCategoryGeneral = "General Feedback"
)

type Feedback struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Category  string    `db:"category" json:"category"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
