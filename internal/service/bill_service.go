package service

import (
	"context"
	"fmt"

	"sheetcrm/internal/model"
	"sheetcrm/internal/repository"
)

// BillService creates bills and answers purchase history queries
type BillService interface {
	CreateBill(ctx context.Context, bill model.Bill) (*model.Bill, error)
	PurchaseHistory(ctx context.Context, customerID string) ([]model.Bill, error)
}

type billService struct {
	bills    repository.BillRepository
	products repository.ProductRepository
}

// NewBillService creates a new BillService
func NewBillService(bills repository.BillRepository, products repository.ProductRepository) BillService {
	return &billService{bills: bills, products: products}
}

// CreateBill prices the bill from the Products worksheet and appends it.
// Any client supplied total is overwritten. Nothing is written if pricing fails.
func (s *billService) CreateBill(ctx context.Context, bill model.Bill) (*model.Bill, error) {
	if len(bill.ProductIDs) != len(bill.Quantities) {
		return nil, ErrLengthMismatch
	}

	snap, err := s.products.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products for bill: %w", err)
	}
	total, err := CalculateTotal(snap, bill.ProductIDs, bill.Quantities)
	if err != nil {
		return nil, err
	}
	bill.TotalAmount = total

	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill in repo: %w", err)
	}
	return &bill, nil
}

func (s *billService) PurchaseHistory(ctx context.Context, customerID string) ([]model.Bill, error) {
	all, err := s.bills.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills: %w", err)
	}
	history := make([]model.Bill, 0)
	for _, b := range all {
		if b.CustomerID == customerID {
			history = append(history, b)
		}
	}
	return history, nil
}
