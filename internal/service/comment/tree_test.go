package comment_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"union-portal/internal/domain"
	"union-portal/internal/service/comment"
)

func row(id uuid.UUID, parentID *uuid.UUID, author string, anonymous bool, createdAt time.Time) domain.Comment {
	c := domain.Comment{
		ID:          id,
		PostID:      uuid.Nil,
		ParentID:    parentID,
		IsAnonymous: anonymous,
		Body:        "some comment body",
		CreatedAt:   createdAt,
	}
	if author != "" {
		c.Author = &author
	}
	return c
}

func countNodes(nodes []*domain.CommentNode) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Replies)
	}
	return total
}

func TestBuildTree_NodeCount(t *testing.T) {
	now := time.Now()
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()

	rows := []domain.Comment{
		row(grandchildID, &childID, "Carol", false, now.Add(2*time.Minute)),
		row(rootID, nil, "Alice", false, now),
		row(childID, &rootID, "Bob", false, now.Add(time.Minute)),
	}

	tree := comment.BuildTree(rows, now)

	require.Len(t, tree, 1)
	assert.Equal(t, len(rows), countNodes(tree))
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, childID, tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, grandchildID, tree[0].Replies[0].Replies[0].ID)
}

func TestBuildTree_OrphansDropped(t *testing.T) {
	now := time.Now()
	missingParent := uuid.New()
	orphanID := uuid.New()
	orphanChildID := uuid.New()

	rows := []domain.Comment{
		row(uuid.New(), nil, "Alice", false, now),
		row(orphanID, &missingParent, "Bob", false, now.Add(time.Minute)),
		row(orphanChildID, &orphanID, "Carol", false, now.Add(2*time.Minute)),
	}

	tree := comment.BuildTree(rows, now)

	// The orphan and everything under it disappear from the output.
	require.Len(t, tree, 1)
	assert.Equal(t, 1, countNodes(tree))
	assert.Empty(t, tree[0].Replies)
}

func TestBuildTree_Ordering(t *testing.T) {
	now := time.Now()
	t1 := now.Add(-3 * time.Minute)
	t2 := now.Add(-2 * time.Minute)
	t3 := now.Add(-1 * time.Minute)

	t.Run("roots newest first", func(t *testing.T) {
		rows := []domain.Comment{
			row(uuid.New(), nil, "A", false, t1),
			row(uuid.New(), nil, "B", false, t3),
			row(uuid.New(), nil, "C", false, t2),
		}

		tree := comment.BuildTree(rows, now)

		require.Len(t, tree, 3)
		assert.Equal(t, t3, tree[0].CreatedAt)
		assert.Equal(t, t2, tree[1].CreatedAt)
		assert.Equal(t, t1, tree[2].CreatedAt)
	})

	t.Run("replies oldest first", func(t *testing.T) {
		parentID := uuid.New()
		rows := []domain.Comment{
			row(parentID, nil, "P", false, now.Add(-time.Hour)),
			row(uuid.New(), &parentID, "A", false, t2),
			row(uuid.New(), &parentID, "B", false, t1),
			row(uuid.New(), &parentID, "C", false, t3),
		}

		tree := comment.BuildTree(rows, now)

		require.Len(t, tree, 1)
		require.Len(t, tree[0].Replies, 3)
		assert.Equal(t, t1, tree[0].Replies[0].CreatedAt)
		assert.Equal(t, t2, tree[0].Replies[1].CreatedAt)
		assert.Equal(t, t3, tree[0].Replies[2].CreatedAt)
	})

	t.Run("replies sorted at every depth", func(t *testing.T) {
		parentID := uuid.New()
		childID := uuid.New()
		rows := []domain.Comment{
			row(parentID, nil, "P", false, now.Add(-time.Hour)),
			row(childID, &parentID, "C", false, now.Add(-30*time.Minute)),
			row(uuid.New(), &childID, "X", false, t3),
			row(uuid.New(), &childID, "Y", false, t1),
		}

		tree := comment.BuildTree(rows, now)

		require.Len(t, tree, 1)
		deep := tree[0].Replies[0].Replies
		require.Len(t, deep, 2)
		assert.Equal(t, t1, deep[0].CreatedAt)
		assert.Equal(t, t3, deep[1].CreatedAt)
	})
}

func TestDisplayName(t *testing.T) {
	now := time.Now()

	t.Run("anonymous masks stored author", func(t *testing.T) {
		c := row(uuid.New(), nil, "Jane", true, now)
		assert.Equal(t, domain.AnonymousDisplayName, comment.DisplayName(c))
	})

	t.Run("named author passes through", func(t *testing.T) {
		c := row(uuid.New(), nil, "Jane", false, now)
		assert.Equal(t, "Jane", comment.DisplayName(c))
	})

	t.Run("missing author falls back to sentinel", func(t *testing.T) {
		c := row(uuid.New(), nil, "", false, now)
		assert.Equal(t, domain.AnonymousDisplayName, comment.DisplayName(c))
	})
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want string
	}{
		{"fresh", 30 * time.Second, "just now"},
		{"under an hour", 59*time.Minute + 59*time.Second, "just now"},
		{"exactly one hour", time.Hour, "1 hour ago"},
		{"some hours", 5 * time.Hour, "5 hours ago"},
		{"under a day", 23*time.Hour + 59*time.Minute, "23 hours ago"},
		{"exactly one day", 24 * time.Hour, "1 day ago"},
		{"some days", 72 * time.Hour, "3 days ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, comment.RelativeAge(now.Add(-tc.age), now))
		})
	}
}

func TestBuildTree_Scenario(t *testing.T) {
	now := time.Now()
	rootID := uuid.New()

	a := row(rootID, nil, "Sam", false, now)
	a.Body = "Great overview, thanks!"
	b := row(uuid.New(), &rootID, "Jane", true, now.Add(10*time.Second))
	b.Body = "Totally agree with this"

	tree := comment.BuildTree([]domain.Comment{a, b}, now)

	require.Len(t, tree, 1)
	assert.Equal(t, rootID, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, "Totally agree with this", tree[0].Replies[0].Body)
	assert.Equal(t, domain.AnonymousDisplayName, tree[0].Replies[0].DisplayName)
	assert.Equal(t, "Sam", tree[0].DisplayName)
}
