package http

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
)

const defaultUserID = "demo-user"

func callerID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader("X-User-Id")); id != "" {
		return id
	}
	return defaultUserID
}

// ListClubs returns the clubs visible to the caller.
func (h *Handler) ListClubs(c *gin.Context) {
	visible, err := h.clubsSvc.VisibleClubs(c.Request.Context(), callerID(c))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "clubs_failed", errMessage(err), err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"clubs": visible})
}

// CreateClub registers a new club owned by the caller.
func (h *Handler) CreateClub(c *gin.Context) {
	var req clubs.CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	club, err := h.clubsSvc.CreateClub(c.Request.Context(), callerID(c), req)
	if err != nil {
		abortWithError(c, clubsHTTPError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"club": club})
}

// ClubPosts returns a club feed, newest first.
func (h *Handler) ClubPosts(c *gin.Context) {
	posts, err := h.clubsSvc.Posts(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "clubs_failed", errMessage(err), err))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type createPostPayload struct {
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl"`
	ImageData string `json:"imageData"`
	ImageMime string `json:"imageMime"`
}

// CreateClubPost adds a post to a club feed. An optional base64 image is
// stored and served back through the media endpoint.
func (h *Handler) CreateClubPost(c *gin.Context) {
	var payload createPostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	req := clubs.CreatePostRequest{
		Text:      payload.Text,
		ImageURL:  payload.ImageURL,
		ImageMime: payload.ImageMime,
	}
	if payload.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(payload.ImageData)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "imageData must be base64", err))
			return
		}
		req.ImageData = data
	}

	post, err := h.clubsSvc.CreatePost(c.Request.Context(), callerID(c), c.Param("id"), req)
	if err != nil {
		abortWithError(c, clubsHTTPError(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": post})
}

type reactPayload struct {
	PostID   string `json:"postId"`
	Reaction string `json:"reaction"`
}

// ReactToPost bumps one reaction counter on a post.
func (h *Handler) ReactToPost(c *gin.Context) {
	var payload reactPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if payload.PostID == "" || payload.Reaction == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Нужно указать postId и reaction", nil))
		return
	}

	post, err := h.clubsSvc.React(c.Request.Context(), callerID(c), c.Param("id"), payload.PostID, clubs.Reaction(payload.Reaction))
	if err != nil {
		abortWithError(c, clubsHTTPError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Media streams a stored club post image.
func (h *Handler) Media(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	reader, mimeType, err := h.clubsSvc.Image(c.Request.Context(), key)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "media_not_found", "image not found", err))
		return
	}
	defer reader.Close()

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	c.Header("Content-Type", mimeType)
	c.Header("Cache-Control", "public, max-age=86400")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Warn("media stream interrupted", "key", key, "error", err)
	}
}

func clubsHTTPError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "post_not_found"):
		return NewHTTPError(http.StatusNotFound, "post_not_found", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "clubs_failed", errMessage(err), err)
	}
}
