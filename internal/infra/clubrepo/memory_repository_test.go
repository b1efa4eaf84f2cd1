package clubrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
)

func TestMemoryRepositoryClubLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertClub(ctx, clubs.Club{ID: "club-1", Name: "Томатоводы", Members: []string{"user-1"}}))

	listed, err := repo.ListClubs(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, repo.AddMember(ctx, "club-1", "user-2"))
	// joining twice stays idempotent
	require.NoError(t, repo.AddMember(ctx, "club-1", "user-2"))

	listed, err = repo.ListClubs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"user-1", "user-2"}, listed[0].Members)
}

func TestMemoryRepositoryPostsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertPost(ctx, "club-1", clubs.Post{ID: "post-1", Text: "первый"}))
	require.NoError(t, repo.InsertPost(ctx, "club-1", clubs.Post{ID: "post-2", Text: "второй"}))

	posts, err := repo.Posts(ctx, "club-1")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "post-2", posts[0].ID)
	require.Equal(t, "post-1", posts[1].ID)
}

func TestMemoryRepositoryIncrementReaction(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertPost(ctx, "club-1", clubs.Post{ID: "post-1"}))

	post, found, err := repo.IncrementReaction(ctx, "club-1", "post-1", clubs.ReactionHeart)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(1), post.Reactions.Heart)

	post, found, err = repo.IncrementReaction(ctx, "club-1", "post-1", clubs.ReactionHeart)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(2), post.Reactions.Heart)

	_, found, err = repo.IncrementReaction(ctx, "club-1", "post-nope", clubs.ReactionLike)
	require.NoError(t, err)
	require.False(t, found)
}
