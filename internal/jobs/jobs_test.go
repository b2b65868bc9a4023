package jobs_test

import (
	"context"
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockOrphanedLinksRemover struct{ mock.Mock }

func (m *MockOrphanedLinksRemover) Handle(ctx context.Context, cmd commands.RemoveOrphanedProductLinksCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderStatsReader struct{ mock.Mock }

func (m *MockOrderStatsReader) Handle(
	ctx context.Context, query queries.GetOrderStatsQuery,
) (queries.GetOrderStatsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderStatsQueryResponse), args.Error(1)
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func TestOrphanedLinksCleanupJob_Run(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.New()
	handler := new(MockOrphanedLinksRemover)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.RemoveOrphanedProductLinksCommand")).
		Return(int64(3), nil).Once()

	job := jobs.NewOrphanedLinksCleanupJob(handler, m.OrphanedLinksPurged, "0 * * * * *", zap.New(core))
	job.Run(context.Background())

	assert.InDelta(t, 3, counterValue(t, m.OrphanedLinksPurged), 0)
	entries := logs.FilterMessage("Orphaned product links removed").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].ContextMap()["count"])
	assert.Equal(t, "orphaned_links_cleanup_job", entries[0].ContextMap()["component"])
	handler.AssertExpectations(t)
}

func TestOrphanedLinksCleanupJob_Run_NothingRemoved(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.New()
	handler := new(MockOrphanedLinksRemover)
	handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	job := jobs.NewOrphanedLinksCleanupJob(handler, m.OrphanedLinksPurged, "0 * * * * *", zap.New(core))
	job.Run(context.Background())

	assert.Zero(t, counterValue(t, m.OrphanedLinksPurged))
	assert.Zero(t, logs.Len())
}

func TestOrphanedLinksCleanupJob_Run_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := metrics.New()
	handler := new(MockOrphanedLinksRemover)
	handler.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	job := jobs.NewOrphanedLinksCleanupJob(handler, m.OrphanedLinksPurged, "0 * * * * *", zap.New(core))
	job.Run(context.Background())

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	assert.Zero(t, counterValue(t, m.OrphanedLinksPurged))
}

func TestOrderStatsJob_Run(t *testing.T) {
	m := metrics.New()
	handler := new(MockOrderStatsReader)
	handler.On("Handle", mock.Anything, mock.AnythingOfType("queries.GetOrderStatsQuery")).
		Return(queries.GetOrderStatsQueryResponse{Orders: 4, ProductLinks: 9}, nil).Once()

	job := jobs.NewOrderStatsJob(handler, m.OrdersTotal, m.ProductLinksTotal, "*/30 * * * * *", zap.NewNop())
	job.Run(context.Background())

	assert.InDelta(t, 4, gaugeValue(t, m.OrdersTotal), 0)
	assert.InDelta(t, 9, gaugeValue(t, m.ProductLinksTotal), 0)
}

func TestOrderStatsJob_Run_KeepsLastValueOnFailure(t *testing.T) {
	m := metrics.New()
	m.OrdersTotal.Set(2)
	handler := new(MockOrderStatsReader)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderStatsQueryResponse{}, errors.New("timeout")).Once()

	job := jobs.NewOrderStatsJob(handler, m.OrdersTotal, m.ProductLinksTotal, "*/30 * * * * *", zap.NewNop())
	job.Run(context.Background())

	assert.InDelta(t, 2, gaugeValue(t, m.OrdersTotal), 0)
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	m := metrics.New()
	remover := new(MockOrphanedLinksRemover)
	stats := new(MockOrderStatsReader)

	manager := jobs.NewJobManager(remover, stats, m, jobs.Schedules{OrphanCleanup: "not a schedule"}, zap.NewNop())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orphaned links cleanup job")
	remover.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAll_StopAll(t *testing.T) {
	m := metrics.New()
	remover := new(MockOrphanedLinksRemover)
	stats := new(MockOrderStatsReader)
	remover.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()
	stats.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetOrderStatsQueryResponse{Orders: 1}, nil)

	manager := jobs.NewJobManager(remover, stats, m, jobs.DefaultSchedules, zap.NewNop())

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.InDelta(t, 1, gaugeValue(t, m.OrdersTotal), 0)
}
