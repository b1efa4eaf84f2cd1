package almanac

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
	"github.com/alyoshka-app/alyoshka/pkg/util"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Service resolves the home cards and the flip-calendar view for a date.
type Service interface {
	Home(ctx context.Context, req Request) (HomeView, error)
	Month(ctx context.Context, month string) (CalendarView, error)
	Tips(ctx context.Context, culture string) ([]GardenTip, error)
}

// FixtureStore reads the static JSON documents backing the resolver. A
// missing document is reported through the ok flag, a malformed one through
// the error; the resolver degrades to defaults in both cases.
type FixtureStore interface {
	Month(ctx context.Context, month string) (MonthDocument, bool, error)
	Guides(ctx context.Context, month string) (GuideDocument, bool, error)
	Tips(ctx context.Context) ([]GardenTip, error)
	Notices(ctx context.Context) ([]ImportantNotice, error)
}

// RemoteClient fetches the already-resolved shapes from the remote API. It is
// the first source of the cascade and optional.
type RemoteClient interface {
	Home(ctx context.Context, date, region string) (HomeView, error)
	Month(ctx context.Context, month string) (CalendarView, error)
}

// MonthCache stores resolved calendar views keyed by ISO month. Entries are
// written once per key; later reads are idempotent.
type MonthCache interface {
	Get(ctx context.Context, month string) (CalendarView, bool, error)
	Put(ctx context.Context, month string, view CalendarView) error
}

// Config tunes the resolver.
type Config struct {
	// DefaultRegion substitutes an empty region parameter. The region is
	// reserved for future localization and does not filter yet.
	DefaultRegion string
	// WarmAdjacent pre-fetches the previous and next month after a month
	// resolves successfully.
	WarmAdjacent bool
}

type service struct {
	cfg      Config
	fixtures FixtureStore
	remote   RemoteClient
	cache    MonthCache
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the resolver with its cascade sources.
func NewService(cfg Config, fixtures FixtureStore, remote RemoteClient, cache MonthCache, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		fixtures: fixtures,
		remote:   remote,
		cache:    cache,
		logger:   logger.With("component", "almanac.service"),
		now:      util.NowUTC,
	}
}

func (s *service) Home(ctx context.Context, req Request) (HomeView, error) {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return HomeView{}, apperrors.Wrap("invalid_input", "date must be formatted as YYYY-MM-DD", err)
	}
	region := strings.TrimSpace(req.Region)
	if region == "" {
		region = s.cfg.DefaultRegion
	}

	if s.remote != nil {
		view, err := s.remote.Home(ctx, date, region)
		if err == nil {
			return view, nil
		}
		s.logger.Warn("remote home fetch failed, falling back to fixtures", "date", date, "error", err)
	}

	return s.localHome(ctx, date), nil
}

// localHome composes the three cards from fixtures. The loads run
// concurrently; each source that fails substitutes its own default instead of
// failing the join.
func (s *service) localHome(ctx context.Context, date string) HomeView {
	month := date[:len(monthLayout)]

	var (
		doc     MonthDocument
		docOK   bool
		tips    []GardenTip
		notices []ImportantNotice
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		loaded, ok, err := s.fixtures.Month(ctx, month)
		if err != nil {
			s.logger.Warn("lunar fixture unreadable", "month", month, "error", err)
			return
		}
		doc, docOK = loaded, ok
	}()
	go func() {
		defer wg.Done()
		loaded, err := s.fixtures.Tips(ctx)
		if err != nil {
			s.logger.Warn("garden tips fixture unreadable", "error", err)
			return
		}
		tips = loaded
	}()
	go func() {
		defer wg.Done()
		loaded, err := s.fixtures.Notices(ctx)
		if err != nil {
			s.logger.Warn("notices fixture unreadable", "error", err)
			return
		}
		notices = loaded
	}()
	wg.Wait()

	day := dayOfMonth(date)
	return HomeView{
		Lunar:     pickLunarDay(doc, docOK, date),
		Garden:    rotateTip(tips, day),
		Important: rotateNotice(notices, day),
	}
}

func (s *service) Month(ctx context.Context, month string) (CalendarView, error) {
	month, err := s.resolveMonth(month)
	if err != nil {
		return CalendarView{}, apperrors.Wrap("invalid_input", "month must be formatted as YYYY-MM", err)
	}

	if cached, ok, err := s.cache.Get(ctx, month); err != nil {
		s.logger.Warn("month cache read failed", "month", month, "error", err)
	} else if ok {
		return cached, nil
	}

	view := s.fetchMonth(ctx, month)
	if err := s.cache.Put(ctx, month, view); err != nil {
		s.logger.Warn("month cache write failed", "month", month, "error", err)
	}

	if s.cfg.WarmAdjacent {
		warmCtx := context.WithoutCancel(ctx)
		go s.warm(warmCtx, adjacentMonth(month, -1))
		go s.warm(warmCtx, adjacentMonth(month, 1))
	}

	return view, nil
}

func (s *service) Tips(ctx context.Context, culture string) ([]GardenTip, error) {
	tips, err := s.fixtures.Tips(ctx)
	if err != nil {
		s.logger.Warn("garden tips fixture unreadable", "error", err)
		tips = nil
	}
	filtered := make([]GardenTip, 0, len(tips))
	for _, tip := range tips {
		if culture == "" || tip.Culture == culture {
			filtered = append(filtered, tip)
		}
	}
	return filtered, nil
}

// fetchMonth runs the month cascade: remote first, then fixtures, never an
// error. A missing or unreadable document becomes a placeholder.
func (s *service) fetchMonth(ctx context.Context, month string) CalendarView {
	if s.remote != nil {
		view, err := s.remote.Month(ctx, month)
		if err == nil {
			return view
		}
		s.logger.Warn("remote month fetch failed, falling back to fixtures", "month", month, "error", err)
	}

	doc, ok, err := s.fixtures.Month(ctx, month)
	if err != nil {
		s.logger.Warn("lunar fixture unreadable", "month", month, "error", err)
		ok = false
	}
	if !ok || len(doc.Days) == 0 {
		doc = PlaceholderMonth(month)
	}

	guides, ok, err := s.fixtures.Guides(ctx, month)
	if err != nil {
		s.logger.Warn("guides fixture unreadable", "month", month, "error", err)
		ok = false
	}
	if !ok {
		guides = EmptyGuides(month)
	}

	return CalendarView{MonthDocument: doc, Guides: guides}
}

// warm pre-fetches a month into the cache, best effort.
func (s *service) warm(ctx context.Context, month string) {
	if month == "" {
		return
	}
	if _, ok, err := s.cache.Get(ctx, month); err != nil || ok {
		return
	}
	view := s.fetchMonth(ctx, month)
	if err := s.cache.Put(ctx, month, view); err != nil {
		s.logger.Debug("month warm skipped", "month", month, "error", err)
	}
}

func (s *service) resolveDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return s.now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

// resolveMonth mirrors resolveDate: an empty month means the current one.
func (s *service) resolveMonth(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return s.now().Format(monthLayout), nil
	}
	if _, err := time.Parse(monthLayout, trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}

// pickLunarDay selects the entry matching the date, falling back to the first
// entry of the document and finally to the synthesized default.
func pickLunarDay(doc MonthDocument, ok bool, date string) LunarDay {
	if !ok || len(doc.Days) == 0 {
		return DefaultLunarDay(date)
	}
	for _, day := range doc.Days {
		if day.Date == date {
			return day
		}
	}
	return doc.Days[0]
}

// rotateTip applies the deterministic rotation: index dayOfMonth mod length.
// The rotation is order-sensitive on purpose; see the fixture contract.
func rotateTip(tips []GardenTip, day int) GardenTip {
	if len(tips) == 0 {
		return DefaultGardenTip()
	}
	return tips[day%len(tips)]
}

func rotateNotice(notices []ImportantNotice, day int) ImportantNotice {
	if len(notices) == 0 {
		return DefaultNotice()
	}
	return notices[day%len(notices)]
}

func dayOfMonth(date string) int {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return 1
	}
	return parsed.Day()
}

func adjacentMonth(month string, offset int) string {
	parsed, err := time.Parse(monthLayout, month)
	if err != nil {
		return ""
	}
	return parsed.AddDate(0, offset, 0).Format(monthLayout)
}
