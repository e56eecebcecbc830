package customer

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Customer is a subscriber record. Field order is the on-disk key order of
// the customers document, so keep it stable.
type Customer struct {
	ID               string `json:"id" bson:"id"`
	Name             string `json:"name" bson:"name"`
	Dob              string `json:"dob" bson:"dob"`
	Email            string `json:"email" bson:"email"`
	AdharNumber      string `json:"adharNumber" bson:"adharNumber"`
	RegistrationDate string `json:"registrationDate" bson:"registrationDate"`
	MobileNumber     string `json:"mobileNumber" bson:"mobileNumber"`
	Plan             Plan   `json:"plan" bson:"plan"`
}

// Plan holds the current subscription terms of a Customer.
// RenewalDate is only present after a renewal. An empty name or status is
// left out of the document, the same as an update that did not send it.
type Plan struct {
	PlanName    string  `json:"planName,omitempty" bson:"planName,omitempty"`
	PlanCost    float64 `json:"planCost" bson:"planCost"`
	Validity    float64 `json:"validity" bson:"validity"`
	PlanStatus  string  `json:"planStatus,omitempty" bson:"planStatus,omitempty"`
	RenewalDate string  `json:"renewalDate,omitempty" bson:"renewalDate,omitempty"`
}

// Registration is the payload of a new-customer request.
type Registration struct {
	Name             string  `json:"name" validate:"required"`
	Dob              string  `json:"dob" validate:"required"`
	Email            string  `json:"email" validate:"required"`
	AdharNumber      string  `json:"adharNumber" validate:"required,len=12"`
	RegistrationDate string  `json:"registrationDate" validate:"required"`
	MobileNumber     string  `json:"mobileNumber" validate:"required,len=10"`
	PlanName         string  `json:"planName" validate:"required"`
	PlanCost         float64 `json:"planCost" validate:"required"`
	Validity         float64 `json:"validity" validate:"required"`
	PlanStatus       string  `json:"planStatus" validate:"required"`

	// set when the field arrived as a non-string JSON value
	adharNotString  bool
	mobileNotString bool
}

// UnmarshalJSON accepts any JSON value for adharNumber and mobileNumber so
// that a number fails the length rule instead of the decoder.
func (r *Registration) UnmarshalJSON(data []byte) error {
	type plain Registration
	var aux struct {
		plain
		AdharNumber  json.RawMessage `json:"adharNumber"`
		MobileNumber json.RawMessage `json:"mobileNumber"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*r = Registration(aux.plain)
	var err error
	if r.AdharNumber, r.adharNotString, err = looseString(aux.AdharNumber); err != nil {
		return err
	}
	if r.MobileNumber, r.mobileNotString, err = looseString(aux.MobileNumber); err != nil {
		return err
	}
	return nil
}

// looseString decodes a JSON string as is. null, false and zero count as
// absent; any other value is returned as its raw text with notString set.
func looseString(raw json.RawMessage) (s string, notString bool, err error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false, nil
	}
	switch {
	case raw[0] == '"':
		err = json.Unmarshal(raw, &s)
		return s, false, err
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		return "", false, nil
	}
	if f, perr := strconv.ParseFloat(string(raw), 64); perr == nil && f == 0 {
		return "", false, nil
	}
	return string(raw), true, nil
}

// Renewal is the payload of a plan renewal.
type Renewal struct {
	RenewalDate string `json:"renewalDate"`
	PlanStatus  string `json:"planStatus"`
}

// PlanChange is the payload of an upgrade or downgrade.
type PlanChange struct {
	NewPlanName string  `json:"newPlanName"`
	PlanCost    float64 `json:"planCost"`
	Validity    float64 `json:"validity"`
	PlanStatus  string  `json:"planStatus"`
}

// NewCustomer builds the record stored for a registration.
func NewCustomer(id string, r Registration) Customer {
	return Customer{
		ID:               id,
		Name:             r.Name,
		Dob:              r.Dob,
		Email:            r.Email,
		AdharNumber:      r.AdharNumber,
		RegistrationDate: r.RegistrationDate,
		MobileNumber:     r.MobileNumber,
		Plan: Plan{
			PlanName:   r.PlanName,
			PlanCost:   r.PlanCost,
			Validity:   r.Validity,
			PlanStatus: r.PlanStatus,
		},
	}
}

// Renew applies a renewal to the plan. Nothing else is touched.
func (c *Customer) Renew(r Renewal) {
	c.Plan.RenewalDate = r.RenewalDate
	c.Plan.PlanStatus = r.PlanStatus
}

// ChangePlan overwrites name, cost, validity and status of the plan.
// RenewalDate is kept.
func (c *Customer) ChangePlan(p PlanChange) {
	c.Plan.PlanName = p.NewPlanName
	c.Plan.PlanCost = p.PlanCost
	c.Plan.Validity = p.Validity
	c.Plan.PlanStatus = p.PlanStatus
}

// IndexOf returns the position of the customer with the given id, or -1.
func IndexOf(customers []Customer, id string) int {
	for i := range customers {
		if customers[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of the collection that shares no backing array with
// the input. Customer has no reference fields, so a slice copy is deep.
func Clone(customers []Customer) []Customer {
	out := make([]Customer, len(customers))
	copy(out, customers)
	return out
}
