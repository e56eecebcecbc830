package repository

import (
	"context"
	"time"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/pkg/metrics"
)

// Instrumented records load/save latency per backend.
type Instrumented struct {
	Store
	backend string
}

func NewInstrumented(inner Store, backend string) *Instrumented {
	return &Instrumented{Store: inner, backend: backend}
}

func (i *Instrumented) Load(ctx context.Context) ([]customer.Customer, error) {
	start := time.Now()
	out, err := i.Store.Load(ctx)
	metrics.StoreDuration.WithLabelValues(i.backend, "load").Observe(time.Since(start).Seconds())
	return out, err
}

func (i *Instrumented) Save(ctx context.Context, customers []customer.Customer) error {
	start := time.Now()
	err := i.Store.Save(ctx, customers)
	metrics.StoreDuration.WithLabelValues(i.backend, "save").Observe(time.Since(start).Seconds())
	return err
}
