package comment

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"union-portal/internal/domain"
)

// BuildTree turns an unordered batch of comment rows into the display
// forest. Rows whose parent id does not resolve within the batch are
// dropped along with their descendants; they stay in storage but are not
// shown. Roots are ordered newest-first so fresh discussions surface,
// while replies read top to bottom in the order they were written.
func BuildTree(rows []domain.Comment, now time.Time) []*domain.CommentNode {
	nodes := make(map[uuid.UUID]*domain.CommentNode, len(rows))
	for i := range rows {
		row := rows[i]
		nodes[row.ID] = &domain.CommentNode{
			Comment:     row,
			DisplayName: DisplayName(row),
			RelativeAge: RelativeAge(row.CreatedAt, now),
			Replies:     []*domain.CommentNode{},
		}
	}

	roots := make([]*domain.CommentNode, 0, len(rows))
	for i := range rows {
		node := nodes[rows[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[*node.ParentID]; ok {
			parent.Replies = append(parent.Replies, node)
		}
	}

	sort.Slice(roots, func(i, j int) bool {
		return roots[i].CreatedAt.After(roots[j].CreatedAt)
	})
	for _, root := range roots {
		sortReplies(root)
	}

	return roots
}

func sortReplies(node *domain.CommentNode) {
	sort.Slice(node.Replies, func(i, j int) bool {
		return node.Replies[i].CreatedAt.Before(node.Replies[j].CreatedAt)
	})
	for _, reply := range node.Replies {
		sortReplies(reply)
	}
}

// DisplayName resolves the author shown next to a comment. Anonymous rows
// always render as the sentinel, whatever the stored author field holds.
func DisplayName(row domain.Comment) string {
	if row.IsAnonymous || row.Author == nil {
		return domain.AnonymousDisplayName
	}
	return *row.Author
}

// RelativeAge renders how long ago a comment was written: "just now"
// under an hour, whole hours under a day, whole days after that.
func RelativeAge(createdAt, now time.Time) string {
	age := now.Sub(createdAt)

	switch {
	case age < time.Hour:
		return "just now"
	case age < 24*time.Hour:
		hours := int(age.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(age.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}
