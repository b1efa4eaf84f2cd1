package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
	"github.com/alyoshka-app/alyoshka/internal/domain/clubs"
	"github.com/alyoshka-app/alyoshka/internal/domain/feed"
	"github.com/alyoshka-app/alyoshka/internal/domain/journal"
	"github.com/alyoshka-app/alyoshka/internal/infra/clubrepo"
	"github.com/alyoshka-app/alyoshka/internal/infra/config"
	"github.com/alyoshka-app/alyoshka/internal/infra/fixtures"
	"github.com/alyoshka-app/alyoshka/internal/infra/imagestore"
	"github.com/alyoshka-app/alyoshka/internal/infra/monthcache"
)

func TestHomeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/home?date=2025-12-07", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var view almanac.HomeView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, "2025-12-07", view.Lunar.Date)
	// day 7 of a 3-item tip list selects index 1
	require.Equal(t, "Совет 1", view.Garden.Title)
	require.NotEmpty(t, view.Important.Title)
}

func TestHomeEndpointRejectsMalformedDate(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/home?date=07.12.2025", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorCode(t, rec))
}

func TestLunarEndpointServesPlaceholderMonth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/lunar?month=2026-02", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "public, max-age=600", rec.Header().Get("Cache-Control"))

	var view almanac.CalendarView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Days, 28)
	require.Equal(t, almanac.PhaseUnknown, view.Days[0].Phase)
}

func TestLunarEndpointDefaultsToCurrentMonth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/lunar", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view almanac.CalendarView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Equal(t, time.Now().UTC().Format("2006-01"), view.Month)
	require.NotEmpty(t, view.Days)
}

func TestLunarEndpointRejectsMalformedMonth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/lunar?month=декабрь", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorCode(t, rec))
}

func TestGardenEndpointFiltersByCulture(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/garden?culture=томаты", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tips []almanac.GardenTip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tips))
	require.Len(t, tips, 1)
	require.Equal(t, "Совет 2", tips[0].Title)
}

func TestJournalEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/journal", map[string]any{
		"date":    "2025-12-07",
		"actions": []string{"Полив"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var ack journal.Ack
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	require.True(t, ack.OK)
	require.NotZero(t, ack.TS)
}

func TestJournalEndpointRejectsNonPost(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/journal", nil)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFeedEndpointFiltersSources(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/feed", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload feed.Feed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Articles, 1)
	require.Equal(t, "7dach.ru", payload.Articles[0].Source)
}

func TestClubLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/clubs", map[string]any{"name": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorCode(t, rec))

	rec = doRequest(srv, http.MethodPost, "/api/clubs", map[string]any{
		"name":        "Томатоводы",
		"description": "Клуб любителей томатов",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Club clubs.Club `json:"club"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Club.ID)
	clubID := created.Club.ID

	image := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0xFF})
	rec = doRequest(srv, http.MethodPost, "/api/clubs/"+clubID+"/post", map[string]any{
		"text":      "Первый урожай!",
		"imageData": image,
		"imageMime": "image/jpeg",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var posted struct {
		Post clubs.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))
	require.NotEmpty(t, posted.Post.ImageURL)

	// the stored image serves back through the media endpoint
	rec = doRequest(srv, http.MethodGet, posted.Post.ImageURL, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	rec = doRequest(srv, http.MethodPost, "/api/clubs/"+clubID+"/posts/react", map[string]any{
		"postId":   posted.Post.ID,
		"reaction": "sprout",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var reacted struct {
		Post clubs.Post `json:"post"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reacted))
	require.Equal(t, int64(1), reacted.Post.Reactions.Sprout)

	rec = doRequest(srv, http.MethodGet, "/api/clubs/"+clubID+"/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed struct {
		Posts []clubs.Post `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Posts, 1)
}

func TestReactEndpointRequiresPayload(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/clubs/club-1/posts/react", map[string]any{"postId": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_request", decodeErrorCode(t, rec))
}

func TestReactEndpointReportsMissingPost(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/api/clubs/club-1/posts/react", map[string]any{
		"postId":   "post-nope",
		"reaction": "heart",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "post_not_found", decodeErrorCode(t, rec))
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	writeTestFixture(t, dir, "garden_tips.json", `[
		{"culture": "общее", "title": "Совет 0", "steps": [], "difficulty": "easy"},
		{"culture": "общее", "title": "Совет 1", "steps": [], "difficulty": "easy"},
		{"culture": "томаты", "title": "Совет 2", "steps": [], "difficulty": "medium"}
	]`)
	writeTestFixture(t, dir, "important.json", `[
		{"topic": "сад", "title": "Важно 0", "summary": "..."},
		{"topic": "сад", "title": "Важно 1", "summary": "...", "cta": {"type": "done"}}
	]`)
	writeTestFixture(t, dir, "feed_demo.json", `[
		{"title": "Хранение яблок", "url": "https://7dach.ru/yabloki", "source": "7dach.ru", "summary": "Погреб и балкон."},
		{"title": "Чудо-удобрение", "url": "https://example-spam.ru/chudo", "source": "example-spam.ru", "summary": "Реклама."}
	]`)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := fixtures.NewStore(dir, logger)

	almanacSvc := almanac.NewService(
		almanac.Config{DefaultRegion: "RU-MOW"},
		store,
		nil,
		monthcache.NewMemoryStore(0),
		logger,
	)
	feedSvc := feed.NewService(feed.Config{Whitelist: []string{"7dach.ru"}}, store, logger)
	journalSvc := journal.NewService(logger)
	clubsSvc := clubs.NewService(clubrepo.NewMemoryRepository(), imagestore.NewMemoryStore(), logger)

	handler := NewHandler(almanacSvc, feedSvc, journalSvc, clubsSvc, logger)

	cfg := &config.Config{
		HTTP:     config.HTTPConfig{Address: ":0"},
		Fixtures: config.FixturesConfig{Dir: dir},
	}
	return NewRouter(cfg, handler).Handler
}

func doRequest(srv http.Handler, method, target string, body map[string]any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func writeTestFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}
