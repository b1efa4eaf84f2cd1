package clubrepo

import (
	"context"
	"sync"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
)

// MemoryRepository is an in-memory clubs.Repository used for tests/dev.
type MemoryRepository struct {
	mu        sync.RWMutex
	clubs     []clubs.Club
	postsByID map[string][]clubs.Post
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		postsByID: make(map[string][]clubs.Post),
	}
}

// ListClubs implements clubs.Repository.
func (r *MemoryRepository) ListClubs(_ context.Context) ([]clubs.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]clubs.Club, len(r.clubs))
	copy(out, r.clubs)
	return out, nil
}

// InsertClub implements clubs.Repository.
func (r *MemoryRepository) InsertClub(_ context.Context, club clubs.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clubs = append(r.clubs, club)
	return nil
}

// AddMember joins the user unless already a member.
func (r *MemoryRepository) AddMember(_ context.Context, clubID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.clubs {
		if r.clubs[i].ID != clubID {
			continue
		}
		for _, member := range r.clubs[i].Members {
			if member == userID {
				return nil
			}
		}
		r.clubs[i].Members = append(r.clubs[i].Members, userID)
		return nil
	}
	return nil
}

// Posts implements clubs.Repository.
func (r *MemoryRepository) Posts(_ context.Context, clubID string) ([]clubs.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.postsByID[clubID]
	out := make([]clubs.Post, len(stored))
	copy(out, stored)
	return out, nil
}

// InsertPost prepends the post so feeds read newest first.
func (r *MemoryRepository) InsertPost(_ context.Context, clubID string, post clubs.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.postsByID[clubID] = append([]clubs.Post{post}, r.postsByID[clubID]...)
	return nil
}

// IncrementReaction implements clubs.Repository.
func (r *MemoryRepository) IncrementReaction(_ context.Context, clubID, postID string, reaction clubs.Reaction) (clubs.Post, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.postsByID[clubID]
	for i := range stored {
		if stored[i].ID != postID {
			continue
		}
		switch reaction {
		case clubs.ReactionHeart:
			stored[i].Reactions.Heart++
		case clubs.ReactionLike:
			stored[i].Reactions.Like++
		case clubs.ReactionSprout:
			stored[i].Reactions.Sprout++
		}
		return stored[i], true, nil
	}
	return clubs.Post{}, false, nil
}

var _ clubs.Repository = (*MemoryRepository)(nil)
