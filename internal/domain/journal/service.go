package journal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
	"github.com/alyoshka-app/alyoshka/pkg/util"
)

// Request is the "mark done" payload.
type Request struct {
	Date    string   `json:"date"`
	Actions []string `json:"actions"`
}

// Ack confirms the entry was received. Nothing is persisted.
type Ack struct {
	OK bool  `json:"ok"`
	TS int64 `json:"ts"`
}

// Service records journal acknowledgments.
type Service interface {
	Record(ctx context.Context, req Request) (Ack, error)
}

type service struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the journal domain.
func NewService(logger *slog.Logger) Service {
	return &service{
		logger: logger.With("component", "journal.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Record(_ context.Context, req Request) (Ack, error) {
	if date := strings.TrimSpace(req.Date); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return Ack{}, apperrors.Wrap("invalid_input", "date must be formatted as YYYY-MM-DD", err)
		}
	}
	s.logger.Info("journal entry acknowledged", "date", req.Date, "actions", len(req.Actions))
	return Ack{OK: true, TS: s.now().UnixMilli()}, nil
}
