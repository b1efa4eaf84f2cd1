package journal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alyoshka-app/alyoshka/pkg/errors"
)

func TestRecordAcknowledges(t *testing.T) {
	svc := newTestJournalService()

	ack, err := svc.Record(context.Background(), Request{Date: "2025-12-07", Actions: []string{"Полив"}})
	require.NoError(t, err)
	require.True(t, ack.OK)
	require.Equal(t, time.Date(2025, time.December, 7, 12, 0, 0, 0, time.UTC).UnixMilli(), ack.TS)
}

func TestRecordAllowsEmptyDate(t *testing.T) {
	svc := newTestJournalService()

	ack, err := svc.Record(context.Background(), Request{Actions: []string{"Полив"}})
	require.NoError(t, err)
	require.True(t, ack.OK)
}

func TestRecordRejectsMalformedDate(t *testing.T) {
	svc := newTestJournalService()

	_, err := svc.Record(context.Background(), Request{Date: "07.12.2025"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func newTestJournalService() *service {
	return &service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    func() time.Time { return time.Date(2025, time.December, 7, 12, 0, 0, 0, time.UTC) },
	}
}
