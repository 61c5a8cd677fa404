package model

import "sheetcrm/internal/record"

// Bill records a sale. ProductIDs and Quantities are paired by position.
// TotalAmount is always computed by the server.
type Bill struct {
	ID          string   `json:"id"`
	CustomerID  string   `json:"customer_id"`
	ProductIDs  []string `json:"product_ids"`
	Quantities  []int    `json:"quantities" binding:"dive,gte=0"`
	Date        string   `json:"date"`
	TotalAmount float64  `json:"total_amount"`
}

var BillColumns = []string{"id", "customer_id", "product_ids", "quantities", "date", "total_amount"}

func (b Bill) ToRow() []string {
	return []string{
		b.ID, b.CustomerID, record.JoinList(b.ProductIDs), record.JoinIntList(b.Quantities),
		b.Date, record.FormatFloat(b.TotalAmount),
	}
}

func BillFromRecord(r record.Record) (Bill, error) {
	var b Bill
	var err error
	if b.ID, err = r.String("id"); err != nil {
		return Bill{}, err
	}
	if b.CustomerID, err = r.String("customer_id"); err != nil {
		return Bill{}, err
	}
	if b.ProductIDs, err = r.StringList("product_ids"); err != nil {
		return Bill{}, err
	}
	if b.Quantities, err = r.IntList("quantities"); err != nil {
		return Bill{}, err
	}
	if b.Date, err = r.String("date"); err != nil {
		return Bill{}, err
	}
	if b.TotalAmount, err = r.Float("total_amount"); err != nil {
		return Bill{}, err
	}
	return b, nil
}
