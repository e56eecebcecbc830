package repository

import (
	"context"
	"fmt"

	"github.com/plancare/customer-service/internal/customer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one Mongo document per customer. The position field
// records collection order, since Mongo does not guarantee natural order.
type MongoStore struct {
	col *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

type mongoCustomer struct {
	Position          int `bson:"position"`
	customer.Customer `bson:",inline"`
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

// EnsureIndexes creates the unique position index used by Load and Save.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "position", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create position index: %w", err)
	}
	return nil
}

func (m *MongoStore) Load(ctx context.Context) ([]customer.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := m.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	defer cur.Close(ctx)

	out := []customer.Customer{}
	for cur.Next(ctx) {
		var d mongoCustomer
		if err := cur.Decode(&d); err != nil {
			return nil, customer.NewStoreError("load", err)
		}
		out = append(out, d.Customer)
	}
	if err := cur.Err(); err != nil {
		return nil, customer.NewStoreError("load", err)
	}
	return out, nil
}

// Save upserts every customer by position, then trims positions past the
// end of the collection. A failed write leaves the previous customers in
// place; nothing is deleted until all writes succeed.
func (m *MongoStore) Save(ctx context.Context, customers []customer.Customer) error {
	if len(customers) > 0 {
		writes := make([]mongo.WriteModel, 0, len(customers))
		for i, c := range customers {
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(bson.D{{Key: "position", Value: i}}).
				SetReplacement(mongoCustomer{Position: i, Customer: c}).
				SetUpsert(true))
		}
		if _, err := m.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true)); err != nil {
			return customer.NewStoreError("save", err)
		}
	}
	trim := bson.D{{Key: "position", Value: bson.D{{Key: "$gte", Value: len(customers)}}}}
	if _, err := m.col.DeleteMany(ctx, trim); err != nil {
		return customer.NewStoreError("save", err)
	}
	return nil
}
