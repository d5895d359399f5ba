// Package metrics holds the prometheus collectors recorded by the candy store.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// AmountBuckets are histogram buckets, in currency units, for order totals.
var AmountBuckets = []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500} //nolint: gochecknoglobals

const (
	// LoginSucceeded labels a login attempt that matched an account.
	LoginSucceeded = "success"
	// LoginFailed labels a login attempt with unknown email or wrong password.
	LoginFailed = "failure"
)

// Shop groups the collectors updated by the shop service.
type Shop struct {
	LoginAttempts    *prometheus.CounterVec
	Checkouts        prometheus.Counter
	OrderAmount      prometheus.Histogram
	InventoryUpdates prometheus.Counter
}

// NewShop creates the shop collectors under namespace and registers them on reg.
func NewShop(reg prometheus.Registerer, namespace string) (*Shop, error) {
	s := &Shop{
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Number of login attempts by result.",
		}, []string{"result"}),
		Checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkouts_total",
			Help:      "Number of carts successfully converted into orders.",
		}),
		OrderAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_amount",
			Help:      "Total amount of placed orders.",
			Buckets:   AmountBuckets,
		}),
		InventoryUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inventory_updates_total",
			Help:      "Number of stock levels set by staff.",
		}),
	}

	for _, c := range []prometheus.Collector{s.LoginAttempts, s.Checkouts, s.OrderAmount, s.InventoryUpdates} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register shop collector: %w", err)
		}
	}

	return s, nil
}
