package jobs

import (
	"context"
	"fmt"

	"orderdesk/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type OrderStatsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
}

// OrderStatsJob refreshes the order and association gauges.
type OrderStatsJob struct {
	handler      OrderStatsReader
	orders       prometheus.Gauge
	productLinks prometheus.Gauge
	schedule     string
	cron         *cron.Cron
	logger       *zap.Logger
}

func NewOrderStatsJob(
	handler OrderStatsReader, orders prometheus.Gauge, productLinks prometheus.Gauge, schedule string, logger *zap.Logger,
) *OrderStatsJob {
	return &OrderStatsJob{
		handler:      handler,
		orders:       orders,
		productLinks: productLinks,
		schedule:     schedule,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With(zap.String("component", "order_stats_job")),
	}
}

// Run reads the counts once and publishes them. Gauges keep their last value on failure.
func (j *OrderStatsJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		j.logger.Error("Order stats job failed", zap.Error(err))
		return
	}

	j.orders.Set(float64(stats.Orders))
	j.productLinks.Set(float64(stats.ProductLinks))
	j.logger.Debug("Order stats refreshed",
		zap.Int64("orders", stats.Orders),
		zap.Int64("product_links", stats.ProductLinks),
	)
}

func (j *OrderStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	// Publish immediately so the gauges are not zero until the first tick.
	j.Run(context.Background())

	j.cron.Start()
	j.logger.Info("Order stats job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order stats job stopped")
}
