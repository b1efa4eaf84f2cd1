package clubrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
)

// PostgresRepository implements clubs.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListClubs fetches all clubs ordered by creation time.
func (r *PostgresRepository) ListClubs(ctx context.Context) ([]clubs.Club, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, owner_id, members, cover, created_at
		FROM clubs
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []clubs.Club
	for rows.Next() {
		var club clubs.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.OwnerID, &club.Members, &club.Cover, &club.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, club)
	}
	return out, rows.Err()
}

// InsertClub inserts a new club row.
func (r *PostgresRepository) InsertClub(ctx context.Context, club clubs.Club) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clubs (id, name, description, owner_id, members, cover, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, club.ID, club.Name, club.Description, club.OwnerID, club.Members, club.Cover, club.CreatedAt)
	return err
}

// AddMember appends the user to the members array unless present.
func (r *PostgresRepository) AddMember(ctx context.Context, clubID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE clubs
		SET members = array_append(members, $2)
		WHERE id = $1 AND NOT ($2 = ANY(members))
	`, clubID, userID)
	return err
}

// Posts fetches a club feed, newest first.
func (r *PostgresRepository) Posts(ctx context.Context, clubID string) ([]clubs.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, author, body, image_url, heart, like_count, sprout, created_at
		FROM club_posts
		WHERE club_id = $1
		ORDER BY created_at DESC
	`, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []clubs.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	return out, rows.Err()
}

// InsertPost inserts a new post row.
func (r *PostgresRepository) InsertPost(ctx context.Context, clubID string, post clubs.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO club_posts (id, club_id, author, body, image_url, heart, like_count, sprout, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, 0, $6)
	`, post.ID, clubID, post.Author, post.Text, post.ImageURL, post.CreatedAt)
	return err
}

// IncrementReaction bumps one counter atomically and returns the updated row.
func (r *PostgresRepository) IncrementReaction(ctx context.Context, clubID, postID string, reaction clubs.Reaction) (clubs.Post, bool, error) {
	column, err := reactionColumn(reaction)
	if err != nil {
		return clubs.Post{}, false, err
	}
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE club_posts
		SET %s = %s + 1
		WHERE id = $1 AND club_id = $2
		RETURNING id, author, body, image_url, heart, like_count, sprout, created_at
	`, column, column), postID, clubID)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clubs.Post{}, false, nil
		}
		return clubs.Post{}, false, err
	}
	return post, true, nil
}

// reactionColumn maps the closed reaction set to column names; anything else
// is rejected before reaching the query text.
func reactionColumn(reaction clubs.Reaction) (string, error) {
	switch reaction {
	case clubs.ReactionHeart:
		return "heart", nil
	case clubs.ReactionLike:
		return "like_count", nil
	case clubs.ReactionSprout:
		return "sprout", nil
	default:
		return "", fmt.Errorf("unknown reaction %q", reaction)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (clubs.Post, error) {
	var post clubs.Post
	err := row.Scan(&post.ID, &post.Author, &post.Text, &post.ImageURL,
		&post.Reactions.Heart, &post.Reactions.Like, &post.Reactions.Sprout, &post.CreatedAt)
	return post, err
}

var _ clubs.Repository = (*PostgresRepository)(nil)
