package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alyoshka-app/alyoshka/internal/domain/almanac"
	"github.com/alyoshka-app/alyoshka/internal/domain/feed"
)

// Store reads the static JSON fixtures from a directory. Month-keyed files
// use an underscore separator: lunar_2025_12.json, guides_2025_12.json.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore constructs a filesystem-backed fixture store.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger.With("component", "fixtures.store")}
}

// Month loads the lunar document for an ISO month key.
func (s *Store) Month(_ context.Context, month string) (almanac.MonthDocument, bool, error) {
	var doc almanac.MonthDocument
	ok, err := s.readJSON(monthFile("lunar", month), &doc)
	return doc, ok, err
}

// Guides loads the planting/works document for an ISO month key.
func (s *Store) Guides(_ context.Context, month string) (almanac.GuideDocument, bool, error) {
	var doc almanac.GuideDocument
	ok, err := s.readJSON(monthFile("guides", month), &doc)
	return doc, ok, err
}

// Tips loads the month-independent garden tip list. A missing file reads as
// an empty list.
func (s *Store) Tips(_ context.Context) ([]almanac.GardenTip, error) {
	var tips []almanac.GardenTip
	ok, err := s.readJSON("garden_tips.json", &tips)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []almanac.GardenTip{}, nil
	}
	return tips, nil
}

// Notices loads the important notice list. A missing file reads as an empty
// list.
func (s *Store) Notices(_ context.Context) ([]almanac.ImportantNotice, error) {
	var notices []almanac.ImportantNotice
	ok, err := s.readJSON("important.json", &notices)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []almanac.ImportantNotice{}, nil
	}
	return notices, nil
}

// Articles loads the demo article feed. A missing file reads as an empty
// list.
func (s *Store) Articles(_ context.Context) ([]feed.Article, error) {
	var articles []feed.Article
	ok, err := s.readJSON("feed_demo.json", &articles)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []feed.Article{}, nil
	}
	return articles, nil
}

func (s *Store) readJSON(name string, out any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return true, nil
}

func monthFile(prefix, month string) string {
	return prefix + "_" + strings.Replace(month, "-", "_", 1) + ".json"
}

var _ almanac.FixtureStore = (*Store)(nil)
var _ feed.Source = (*Store)(nil)
