package customer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedCustomer() Customer {
	return Customer{
		ID:               "1",
		Name:             "John Doe",
		Dob:              "1990-01-01",
		Email:            "john@example.com",
		AdharNumber:      "123456789012",
		RegistrationDate: "2023-01-01",
		MobileNumber:     "9876543210",
		Plan:             Plan{PlanName: "Gold180", PlanCost: 299, Validity: 180, PlanStatus: "Active"},
	}
}

func TestRenewTouchesOnlyDateAndStatus(t *testing.T) {
	c := seedCustomer()
	before := c
	c.Renew(Renewal{RenewalDate: "2024-01-01", PlanStatus: "Renewed"})

	require.Equal(t, "2024-01-01", c.Plan.RenewalDate)
	require.Equal(t, "Renewed", c.Plan.PlanStatus)

	c.Plan.RenewalDate = before.Plan.RenewalDate
	c.Plan.PlanStatus = before.Plan.PlanStatus
	require.Equal(t, before, c)
}

func TestChangePlanKeepsRenewalDate(t *testing.T) {
	c := seedCustomer()
	c.Plan.RenewalDate = "2024-01-01"
	c.ChangePlan(PlanChange{NewPlanName: "Silver90", PlanCost: 199, Validity: 90, PlanStatus: "Active"})

	require.Equal(t, Plan{PlanName: "Silver90", PlanCost: 199, Validity: 90, PlanStatus: "Active", RenewalDate: "2024-01-01"}, c.Plan)
	require.Equal(t, "John Doe", c.Name)
}

func TestIndexOfAndClone(t *testing.T) {
	list := []Customer{seedCustomer(), {ID: "2"}}
	require.Equal(t, 1, IndexOf(list, "2"))
	require.Equal(t, -1, IndexOf(list, "999"))

	cp := Clone(list)
	cp[0].Plan.PlanName = "changed"
	require.Equal(t, "Gold180", list[0].Plan.PlanName)
}

func TestIDGenerators(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)
	g := TimestampIDs{Now: func() time.Time { return fixed }}
	require.Equal(t, "1700000000123", g.NewID())

	u, err := NewIDGenerator(IDStrategyUUID)
	require.NoError(t, err)
	_, err = uuid.Parse(u.NewID())
	require.NoError(t, err)

	def, err := NewIDGenerator("")
	require.NoError(t, err)
	require.NotEmpty(t, def.NewID())

	_, err = NewIDGenerator("snowflake")
	require.Error(t, err)
}

func TestStoreErrorWrapping(t *testing.T) {
	require.NoError(t, NewStoreError("load", nil))

	base := errors.New("disk on fire")
	err := NewStoreError("load", base)
	require.ErrorIs(t, err, base)
	require.Equal(t, "disk on fire", err.Error())
	require.Equal(t, "store load: disk on fire", Describe(err))

	// already wrapped errors keep their original operation
	again := NewStoreError("save", fmt.Errorf("outer: %w", err))
	var se *StoreError
	require.ErrorAs(t, again, &se)
	require.Equal(t, "load", se.Op)
}
