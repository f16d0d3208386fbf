//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"condo-parking/internal/pkg/config"
	"condo-parking/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResetter struct {
	calls atomic.Int64
	err   error
}

func (s *stubResetter) ResetWeeklyUsage(ctx context.Context) (int64, error) {
	s.calls.Add(1)
	if s.err != nil {
		return 0, s.err
	}
	return 42, nil
}

func newWorker(schedule string, units worker.QuotaResetter) *worker.QuotaResetWorker {
	cfg := config.WorkerConfig{QuotaResetSchedule: schedule}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return worker.NewQuotaResetWorker(cfg, units, logger)
}

func TestQuotaResetWorker_StartStop(t *testing.T) {
	units := &stubResetter{}
	w := newWorker("0 0 * * MON", units)

	require.NoError(t, w.Start())
	w.Stop()

	// Monday midnight never fires inside a unit test run.
	assert.Equal(t, int64(0), units.calls.Load())
}

func TestQuotaResetWorker_InvalidSchedule(t *testing.T) {
	w := newWorker("not a cron spec", &stubResetter{})
	assert.Error(t, w.Start())
}
