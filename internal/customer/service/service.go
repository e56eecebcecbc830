package service

import (
	"context"
	"errors"
	"sync"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/plancare/customer-service/internal/customer/repository"
	"github.com/plancare/customer-service/pkg/logger"
	"github.com/plancare/customer-service/pkg/metrics"
)

const (
	OpList       = "list"
	OpRegister   = "register"
	OpRenew      = "renew"
	OpChangePlan = "change_plan"
)

// Service defines the customer operations used by the handler layer.
// Each call performs one Load and, for successful mutations, one Save.
type Service interface {
	List(ctx context.Context) ([]customer.Customer, error)
	// Register appends a new customer and returns the whole updated collection.
	Register(ctx context.Context, r customer.Registration) ([]customer.Customer, error)
	// Renew and ChangePlan return only the affected customer.
	Renew(ctx context.Context, id string, r customer.Renewal) (*customer.Customer, error)
	ChangePlan(ctx context.Context, id string, p customer.PlanChange) (*customer.Customer, error)
}

type Option func(*customerService)

// WithIDGenerator replaces the default millisecond timestamp ids.
func WithIDGenerator(g customer.IDGenerator) Option {
	return func(s *customerService) { s.ids = g }
}

// WithSerializedWrites runs every load-mutate-save cycle under one mutex,
// so concurrent mutations in this process cannot lose each other's updates.
func WithSerializedWrites() Option {
	return func(s *customerService) { s.writeMu = &sync.Mutex{} }
}

type customerService struct {
	store   repository.Store
	ids     customer.IDGenerator
	writeMu *sync.Mutex
}

func New(store repository.Store, opts ...Option) Service {
	s := &customerService{store: store, ids: customer.TimestampIDs{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *customerService) lock() func() {
	if s.writeMu == nil {
		return func() {}
	}
	s.writeMu.Lock()
	return s.writeMu.Unlock
}

func (s *customerService) List(ctx context.Context) (out []customer.Customer, err error) {
	defer func() { record(OpList, err) }()
	return s.store.Load(ctx)
}

func (s *customerService) Register(ctx context.Context, r customer.Registration) (out []customer.Customer, err error) {
	defer func() { record(OpRegister, err) }()
	unlock := s.lock()
	defer unlock()

	customers, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	c := customer.NewCustomer(s.ids.NewID(), r)
	customers = append(customers, c)
	if err := s.store.Save(ctx, customers); err != nil {
		return nil, err
	}
	logger.Infof("registered customer %s (plan %s)", c.ID, c.Plan.PlanName)
	return customers, nil
}

func (s *customerService) Renew(ctx context.Context, id string, r customer.Renewal) (out *customer.Customer, err error) {
	defer func() { record(OpRenew, err) }()
	return s.mutate(ctx, id, func(c *customer.Customer) { c.Renew(r) })
}

func (s *customerService) ChangePlan(ctx context.Context, id string, p customer.PlanChange) (out *customer.Customer, err error) {
	defer func() { record(OpChangePlan, err) }()
	return s.mutate(ctx, id, func(c *customer.Customer) { c.ChangePlan(p) })
}

// mutate applies fn to the customer with id and persists the collection.
// Nothing is written when the id is unknown.
func (s *customerService) mutate(ctx context.Context, id string, fn func(*customer.Customer)) (*customer.Customer, error) {
	unlock := s.lock()
	defer unlock()

	customers, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := customer.IndexOf(customers, id)
	if idx == -1 {
		return nil, customer.ErrNotFound
	}
	fn(&customers[idx])
	if err := s.store.Save(ctx, customers); err != nil {
		return nil, err
	}
	updated := customers[idx]
	return &updated, nil
}

func record(op string, err error) {
	outcome := Outcome(err)
	metrics.CustomerOperations.WithLabelValues(op, outcome).Inc()
	if outcome == "error" {
		logger.Errorf("%s failed: %s", op, customer.Describe(err))
	}
}

// Outcome classifies an operation result for metrics.
func Outcome(err error) string {
	var ve *customer.ValidationError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &ve):
		return "invalid"
	case errors.Is(err, customer.ErrNotFound):
		return "not_found"
	}
	return "error"
}
