package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/plancare/customer-service/internal/customer"
)

const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Store persists the whole customer collection as one document.
// Load returns the full ordered collection; Save replaces it. Implementations
// do not lock across a load-mutate-save cycle, so the last Save wins.
type Store interface {
	Load(ctx context.Context) ([]customer.Customer, error)
	Save(ctx context.Context, customers []customer.Customer) error
}

// Encode renders the collection the way it is kept on disk: two-space
// indentation, struct key order, no HTML escaping, no trailing newline.
func Encode(customers []customer.Customer) ([]byte, error) {
	if customers == nil {
		customers = []customer.Customer{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(customers); err != nil {
		return nil, fmt.Errorf("encode customers: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a customers document. A JSON null decodes to an empty collection.
func Decode(data []byte) ([]customer.Customer, error) {
	var out []customer.Customer
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse customers: %w", err)
	}
	if out == nil {
		out = []customer.Customer{}
	}
	return out, nil
}
