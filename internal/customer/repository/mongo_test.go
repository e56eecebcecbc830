package repository

import (
	"context"
	"testing"

	"github.com/plancare/customer-service/internal/customer"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func customerDoc(pos int, id, name, planName string) bson.D {
	return bson.D{
		{Key: "position", Value: pos},
		{Key: "id", Value: id},
		{Key: "name", Value: name},
		{Key: "dob", Value: "1990-01-01"},
		{Key: "email", Value: "john@example.com"},
		{Key: "adharNumber", Value: "123456789012"},
		{Key: "registrationDate", Value: "2023-01-01"},
		{Key: "mobileNumber", Value: "9876543210"},
		{Key: "plan", Value: bson.D{
			{Key: "planName", Value: planName},
			{Key: "planCost", Value: 299.0},
			{Key: "validity", Value: 180.0},
			{Key: "planStatus", Value: "Active"},
		}},
	}
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("load decodes in cursor order", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			customerDoc(0, "1", "John Doe", "Gold180"),
			customerDoc(1, "2", "Jane Doe", "Silver90"),
		))

		got, err := NewMongoStore(mt.Coll).Load(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		require.Equal(mt, "1", got[0].ID)
		require.Equal(mt, customer.Plan{PlanName: "Silver90", PlanCost: 299, Validity: 180, PlanStatus: "Active"}, got[1].Plan)
	})

	mt.Run("load of empty collection", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := NewMongoStore(mt.Coll).Load(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, got)
		require.Empty(mt, got)
	})

	mt.Run("load failure is a store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := NewMongoStore(mt.Coll).Load(context.Background())
		var se *customer.StoreError
		require.ErrorAs(mt, err, &se)
		require.Equal(mt, "load", se.Op)
	})

	mt.Run("save writes before trimming", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}, bson.E{Key: "nModified", Value: 2}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)
		require.NoError(mt, NewMongoStore(mt.Coll).Save(context.Background(), sampleCustomers()))
		require.Equal(mt, []string{"update", "delete"}, commandNames(mt))

		del := mt.GetAllStartedEvents()[1].Command
		trimFrom := del.Lookup("deletes", "0", "q", "position", "$gte")
		require.EqualValues(mt, len(sampleCustomers()), trimFrom.AsInt64())
	})

	mt.Run("save of empty collection only trims", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		require.NoError(mt, NewMongoStore(mt.Coll).Save(context.Background(), nil))
		require.Equal(mt, []string{"delete"}, commandNames(mt))
	})

	mt.Run("failed write deletes nothing", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)

		err := NewMongoStore(mt.Coll).Save(context.Background(), sampleCustomers())
		var se *customer.StoreError
		require.ErrorAs(mt, err, &se)
		require.Equal(mt, "save", se.Op)
		require.Equal(mt, []string{"update"}, commandNames(mt))
	})

	mt.Run("save failure is a store error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		err := NewMongoStore(mt.Coll).Save(context.Background(), sampleCustomers())
		var se *customer.StoreError
		require.ErrorAs(mt, err, &se)
		require.Equal(mt, "save", se.Op)
	})
}

func commandNames(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}
	return names
}
