package feed

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/alyoshka-app/alyoshka/pkg/util"
)

// Article is one curated gardening article.
type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
	CTA     string `json:"cta,omitempty"`
}

// Feed is the response shape of the article feed endpoint.
type Feed struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Articles  []Article `json:"articles"`
}

// Source provides the raw article list.
type Source interface {
	Articles(ctx context.Context) ([]Article, error)
}

// Config tunes the feed domain.
type Config struct {
	// Whitelist is the set of trusted source hosts. Articles from any other
	// source are dropped.
	Whitelist []string
}

// Service filters the demo feed down to whitelisted sources.
type Service interface {
	Articles(ctx context.Context) (Feed, error)
}

type service struct {
	cfg    Config
	source Source
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the feed domain.
func NewService(cfg Config, source Source, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		source: source,
		logger: logger.With("component", "feed.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Articles(ctx context.Context) (Feed, error) {
	raw, err := s.source.Articles(ctx)
	if err != nil {
		s.logger.Warn("feed source unreadable, serving empty feed", "error", err)
		raw = nil
	}

	articles := make([]Article, 0, len(raw))
	for _, article := range raw {
		if !s.trusted(article.Source) {
			continue
		}
		article.Summary = strings.TrimSpace(article.Summary)
		article.CTA = strings.TrimSpace(article.CTA)
		articles = append(articles, article)
	}

	return Feed{UpdatedAt: s.now(), Articles: articles}, nil
}

func (s *service) trusted(source string) bool {
	for _, host := range s.cfg.Whitelist {
		if host != "" && strings.Contains(source, host) {
			return true
		}
	}
	return false
}
