package domain

import (
	"time"

	"github.com/google/uuid"
)

// WallMessage is a short public message on the union's message wall.
// Hidden messages stay in storage but are excluded from the public listing.
type WallMessage struct {
	ID        uuid.UUID `json:"id" db:"message_id"`
	Nickname  string    `json:"nickname" db:"nickname"`
	Body      string    `json:"body" db:"body"`
	Hidden    bool      `json:"hidden" db:"hidden"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateWallMessageInput struct {
	Nickname string `json:"nickname"`
	Body     string `json:"body"`
}
