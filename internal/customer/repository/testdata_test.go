package repository

import "github.com/plancare/customer-service/internal/customer"

func sampleCustomers() []customer.Customer {
	return []customer.Customer{
		{
			ID:               "1",
			Name:             "John Doe",
			Dob:              "1990-01-01",
			Email:            "john@example.com",
			AdharNumber:      "123456789012",
			RegistrationDate: "2023-01-01",
			MobileNumber:     "9876543210",
			Plan:             customer.Plan{PlanName: "Gold180", PlanCost: 299, Validity: 180, PlanStatus: "Active"},
		},
		{
			ID:               "1700000000123",
			Name:             "Jane <Doe> & Co",
			Dob:              "1992-02-02",
			Email:            "jane@example.com",
			AdharNumber:      "098765432109",
			RegistrationDate: "2023-02-02",
			MobileNumber:     "8765432109",
			Plan:             customer.Plan{PlanName: "Platinum365", PlanCost: 499.5, Validity: 365, PlanStatus: "Active", RenewalDate: "2024-01-01"},
		},
	}
}
