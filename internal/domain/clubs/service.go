package clubs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
	"github.com/alyoshka-app/alyoshka/pkg/util"
)

// CreateClubRequest carries the club creation payload.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cover       string `json:"cover"`
}

// CreatePostRequest carries the post creation payload. ImageData, when
// present, is stored and overrides ImageURL.
type CreatePostRequest struct {
	Text      string
	ImageURL  string
	ImageData []byte
	ImageMime string
}

// Service exposes the community club operations.
type Service interface {
	VisibleClubs(ctx context.Context, userID string) ([]Club, error)
	CreateClub(ctx context.Context, userID string, req CreateClubRequest) (Club, error)
	Posts(ctx context.Context, clubID string) ([]Post, error)
	CreatePost(ctx context.Context, userID, clubID string, req CreatePostRequest) (Post, error)
	React(ctx context.Context, userID, clubID, postID string, reaction Reaction) (Post, error)
	Image(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type service struct {
	repo   Repository
	images ImageStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService wires up the clubs domain.
func NewService(repo Repository, images ImageStore, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		images: images,
		logger: logger.With("component", "clubs.service"),
		now:    util.NowUTC,
		newID:  uuid.NewString,
	}
}

// VisibleClubs lists the clubs the user may see: open clubs plus those the
// user is a member of.
func (s *service) VisibleClubs(ctx context.Context, userID string) ([]Club, error) {
	all, err := s.repo.ListClubs(ctx)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list clubs", err)
	}
	visible := make([]Club, 0, len(all))
	for _, club := range all {
		if len(club.Members) == 0 || containsMember(club.Members, userID) {
			visible = append(visible, club)
		}
	}
	return visible, nil
}

func (s *service) CreateClub(ctx context.Context, userID string, req CreateClubRequest) (Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return Club{}, apperrors.Wrap("invalid_input", "Название обязательно", nil)
	}
	club := Club{
		ID:          "club-" + s.newID(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
		Members:     []string{userID},
		Cover:       req.Cover,
		CreatedAt:   s.now(),
	}
	if err := s.repo.InsertClub(ctx, club); err != nil {
		return Club{}, apperrors.Wrap("storage_error", "failed to create club", err)
	}
	return club, nil
}

func (s *service) Posts(ctx context.Context, clubID string) ([]Post, error) {
	posts, err := s.repo.Posts(ctx, clubID)
	if err != nil {
		return nil, apperrors.Wrap("storage_error", "failed to list posts", err)
	}
	if posts == nil {
		posts = []Post{}
	}
	return posts, nil
}

func (s *service) CreatePost(ctx context.Context, userID, clubID string, req CreatePostRequest) (Post, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Post{}, apperrors.Wrap("invalid_input", "Текст обязателен", nil)
	}

	imageURL := req.ImageURL
	if len(req.ImageData) > 0 {
		key := clubID + "/" + s.newID()
		stored, err := s.images.Put(ctx, key, req.ImageData, req.ImageMime)
		if err != nil {
			return Post{}, apperrors.Wrap("storage_error", "failed to store image", err)
		}
		imageURL = stored.URL
	}

	post := Post{
		ID:        "post-" + s.newID(),
		Author:    userID,
		Text:      req.Text,
		ImageURL:  imageURL,
		CreatedAt: s.now(),
	}
	if err := s.repo.InsertPost(ctx, clubID, post); err != nil {
		return Post{}, apperrors.Wrap("storage_error", "failed to create post", err)
	}
	s.ensureMember(ctx, clubID, userID)
	return post, nil
}

func (s *service) React(ctx context.Context, userID, clubID, postID string, reaction Reaction) (Post, error) {
	if !reaction.Valid() {
		return Post{}, apperrors.Wrap("invalid_input", "Неизвестная реакция", nil)
	}
	post, found, err := s.repo.IncrementReaction(ctx, clubID, postID, reaction)
	if err != nil {
		return Post{}, apperrors.Wrap("storage_error", "failed to record reaction", err)
	}
	if !found {
		return Post{}, apperrors.Wrap("post_not_found", "Пост не найден", nil)
	}
	s.ensureMember(ctx, clubID, userID)
	return post, nil
}

func (s *service) Image(ctx context.Context, key string) (io.ReadCloser, string, error) {
	return s.images.Get(ctx, key)
}

// ensureMember joins the acting user to the club, best effort.
func (s *service) ensureMember(ctx context.Context, clubID, userID string) {
	if userID == "" {
		return
	}
	if err := s.repo.AddMember(ctx, clubID, userID); err != nil {
		s.logger.Warn("failed to join user to club", "club", clubID, "user", userID, "error", err)
	}
}

func containsMember(members []string, userID string) bool {
	for _, member := range members {
		if member == userID {
			return true
		}
	}
	return false
}
