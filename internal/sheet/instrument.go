package sheet

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// InstrumentedStore records the count and latency of every store call
type InstrumentedStore struct {
	next     Store
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrument wraps a store and registers its collectors with reg
func Instrument(next Store, reg prometheus.Registerer) *InstrumentedStore {
	factory := promauto.With(reg)
	return &InstrumentedStore{
		next: next,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sheetcrm_store_operations_total",
			Help: "Total number of record store calls",
		}, []string{"operation", "worksheet", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sheetcrm_store_operation_duration_seconds",
			Help:    "Duration of record store calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation", "worksheet"}),
	}
}

func (s *InstrumentedStore) observe(op, worksheet string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	s.ops.WithLabelValues(op, worksheet, result).Inc()
	s.duration.WithLabelValues(op, worksheet).Observe(time.Since(start).Seconds())
}

func (s *InstrumentedStore) GetAll(ctx context.Context, worksheet string) ([][]string, error) {
	start := time.Now()
	rows, err := s.next.GetAll(ctx, worksheet)
	s.observe("get_all", worksheet, start, err)
	return rows, err
}

func (s *InstrumentedStore) Append(ctx context.Context, worksheet string, row []string) error {
	start := time.Now()
	err := s.next.Append(ctx, worksheet, row)
	s.observe("append", worksheet, start, err)
	return err
}

func (s *InstrumentedStore) UpdateRow(ctx context.Context, worksheet string, rowIndex int, row []string) error {
	start := time.Now()
	err := s.next.UpdateRow(ctx, worksheet, rowIndex, row)
	s.observe("update_row", worksheet, start, err)
	return err
}

func (s *InstrumentedStore) DeleteRow(ctx context.Context, worksheet string, rowIndex int) error {
	start := time.Now()
	err := s.next.DeleteRow(ctx, worksheet, rowIndex)
	s.observe("delete_row", worksheet, start, err)
	return err
}

func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.observe("ping", "", start, err)
	return err
}
