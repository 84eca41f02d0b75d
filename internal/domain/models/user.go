package models

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  []byte    `json:"password" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
