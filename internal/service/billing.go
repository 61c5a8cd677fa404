package service

import (
	"errors"
	"fmt"

	"sheetcrm/internal/model"
	"sheetcrm/internal/repository"
)

// ProductLookup resolves product ids, typically a Products worksheet snapshot
type ProductLookup interface {
	Lookup(id string) (*model.Product, error)
}

// CalculateTotal sums (msrp + taxes) * quantity over the paired lists.
// The first unknown product id aborts the calculation.
func CalculateTotal(products ProductLookup, productIDs []string, quantities []int) (float64, error) {
	if len(productIDs) != len(quantities) {
		return 0, ErrLengthMismatch
	}
	var total float64
	for i, id := range productIDs {
		p, err := products.Lookup(id)
		if errors.Is(err, repository.ErrRowNotFound) {
			return 0, productMissing(id)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to look up product %s: %w", id, err)
		}
		total += p.UnitCost() * float64(quantities[i])
	}
	return total, nil
}
