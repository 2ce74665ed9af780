package models

import (
	"time"

	"github.com/google/uuid"
)

type CareerApplication struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Education string    `db:"education" json:"education"`
	Role      string    `db:"role" json:"role"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
