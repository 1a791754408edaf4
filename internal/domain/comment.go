package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousDisplayName is what an anonymous comment renders as, regardless
// of anything that may have been submitted in the author field.
const AnonymousDisplayName = "Anonymous"

type Comment struct {
	ID          uuid.UUID  `json:"id" db:"comment_id"`
	PostID      uuid.UUID  `json:"post_id" db:"post_id"`
	ParentID    *uuid.UUID `json:"parent_id" db:"parent_id"`
	Author      *string    `json:"author" db:"author"`
	IsAnonymous bool       `json:"is_anonymous" db:"is_anonymous"`
	Body        string     `json:"body" db:"body"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// CommentNode is the display form of a comment: the row plus its nested
// replies. Rebuilt from flat rows on every read, never persisted.
type CommentNode struct {
	Comment
	DisplayName string         `json:"display_name"`
	RelativeAge string         `json:"relative_age"`
	Replies     []*CommentNode `json:"replies"`
}

type CreateCommentInput struct {
	Author      string     `json:"author"`
	Body        string     `json:"body"`
	ParentID    *uuid.UUID `json:"parent_id"`
	IsAnonymous bool       `json:"is_anonymous"`
}

// ModerationDecision is the outcome of the moderation gate. Reason is only
// set when IsSafe is false and is safe to show to the submitter.
type ModerationDecision struct {
	IsSafe bool   `json:"is_safe"`
	Reason string `json:"reason,omitempty"`
}
