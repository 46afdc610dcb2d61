package server

import "github.com/spendsense/spendsense/internal/model"

// SampleTransactions returns a fixed illustrative set of transactions for
// client testing.
func SampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			Date:     "2023-06-15",
			Name:     "Kroger",
			Amount:   78.45,
			Category: "Food and Drink > Groceries",
		},
		{
			Date:     "2023-06-14",
			Name:     "Starbucks",
			Amount:   5.40,
			Category: "Food and Drink > Coffee Shop",
		},
		{
			Date:     "2023-06-12",
			Name:     "RENT PAYMENT",
			Amount:   1200,
			Category: "Housing > Rent",
		},
		{
			Date:     "2023-06-10",
			Name:     "Amazon",
			Amount:   35.67,
			Category: "Shopping > Electronics",
		},
		{
			Date:     "2023-06-07",
			Name:     "CVS Pharmacy",
			Amount:   28.99,
			Category: "Healthcare > Pharmacy",
		},
	}
}
