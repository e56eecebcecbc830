package repository

import (
	"context"
	"sync"

	"github.com/plancare/customer-service/internal/customer"
)

// MemoryStore keeps the collection in process. Load and Save copy, so
// callers never share a backing array with the store.
type MemoryStore struct {
	mu        sync.RWMutex
	customers []customer.Customer
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(seed ...customer.Customer) *MemoryStore {
	return &MemoryStore{customers: customer.Clone(seed)}
}

func (m *MemoryStore) Load(ctx context.Context) ([]customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return customer.Clone(m.customers), nil
}

func (m *MemoryStore) Save(ctx context.Context, customers []customer.Customer) error {
	if err := ctx.Err(); err != nil {
		return customer.NewStoreError("save", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.customers = customer.Clone(customers)
	return nil
}
