package domain

import (
	"time"

	"github.com/google/uuid"
)

// Media is an uploaded file attached to a comment or a wall message.
// Deleting the owning row removes the stored object as well.
type Media struct {
	ID            uuid.UUID  `json:"id" db:"media_id"`
	CommentID     *uuid.UUID `json:"comment_id" db:"comment_id"`
	WallMessageID *uuid.UUID `json:"wall_message_id" db:"wall_message_id"`
	FileName      string     `json:"file_name" db:"file_name"`
	FileSize      int64      `json:"file_size" db:"file_size"`
	MimeType      string     `json:"mime_type" db:"mime_type"`
	StoragePath   string     `json:"-" db:"storage_path"`
	URL           string     `json:"url" db:"-"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
