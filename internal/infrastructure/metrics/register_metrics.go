package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sangkips/pos-register/internal/domain/entity"
	"github.com/sangkips/pos-register/internal/domain/repository"
)

const namespace = "pos_register"

// RegisterMetrics counts paid sales and revenue. The values are written in
// the Prometheus text format for node_exporter's textfile collector.
type RegisterMetrics struct {
	registry  *prometheus.Registry
	salesPaid prometheus.Counter
	revenue   prometheus.Counter
	saleTotal prometheus.Histogram
	path      string
}

// NewRegisterMetrics creates the collectors on a private registry. path is
// where Export writes them.
func NewRegisterMetrics(path string) *RegisterMetrics {
	m := &RegisterMetrics{
		registry: prometheus.NewRegistry(),
		salesPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sales_paid_total",
			Help:      "Number of sales paid at this register.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Revenue of paid sales including VAT.",
		}),
		saleTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sale_total",
			Help:      "Final total of each paid sale.",
			Buckets:   []float64{5, 10, 20, 50, 100, 200, 500},
		}),
		path: path,
	}
	m.registry.MustRegister(m.salesPaid, m.revenue, m.saleTotal)
	return m
}

var _ repository.SaleObserver = (*RegisterMetrics)(nil)

func (m *RegisterMetrics) OnSalePaid(total entity.Money) {
	amount := total.Decimal().InexactFloat64()
	m.salesPaid.Inc()
	m.revenue.Add(amount)
	m.saleTotal.Observe(amount)
}

// Registry exposes the collectors, e.g. for tests
func (m *RegisterMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Name identifies the export in closeout logs
func (m *RegisterMetrics) Name() string {
	return "metrics textfile"
}

// Export writes the current values to the textfile
func (m *RegisterMetrics) Export(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(m.path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", m.path, err)
	}
	return nil
}
