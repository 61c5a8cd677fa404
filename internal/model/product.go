package model

import "sheetcrm/internal/record"

// Product is one catalogue entry. MSRP and Taxes are what a bill charges per unit.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Colour       string  `json:"colour"`
	MainCategory string  `json:"main_category"`
	Category     string  `json:"category"`
	SubCategory  string  `json:"sub_category"`
	Brand        string  `json:"brand"`
	MSRP         float64 `json:"msrp"`
	Model        string  `json:"model"`
	InStockQty   int     `json:"in_stock_qty"`
	Taxes        float64 `json:"taxes"`
	BasePrice    float64 `json:"base_price"`
}

var ProductColumns = []string{
	"id", "name", "colour", "main_category", "category", "sub_category",
	"brand", "msrp", "model", "in_stock_qty", "taxes", "base_price",
}

func (p Product) ToRow() []string {
	return []string{
		p.ID, p.Name, p.Colour, p.MainCategory, p.Category, p.SubCategory,
		p.Brand, record.FormatFloat(p.MSRP), p.Model, record.FormatInt(p.InStockQty),
		record.FormatFloat(p.Taxes), record.FormatFloat(p.BasePrice),
	}
}

// UnitCost is price plus tax for a single unit
func (p Product) UnitCost() float64 {
	return p.MSRP + p.Taxes
}

func ProductFromRecord(r record.Record) (Product, error) {
	var p Product
	strs := []struct {
		column string
		dst    *string
	}{
		{"id", &p.ID},
		{"name", &p.Name},
		{"colour", &p.Colour},
		{"main_category", &p.MainCategory},
		{"category", &p.Category},
		{"sub_category", &p.SubCategory},
		{"brand", &p.Brand},
		{"model", &p.Model},
	}
	for _, f := range strs {
		v, err := r.String(f.column)
		if err != nil {
			return Product{}, err
		}
		*f.dst = v
	}

	var err error
	if p.MSRP, err = r.Float("msrp"); err != nil {
		return Product{}, err
	}
	if p.InStockQty, err = r.Int("in_stock_qty"); err != nil {
		return Product{}, err
	}
	if p.Taxes, err = r.Float("taxes"); err != nil {
		return Product{}, err
	}
	if p.BasePrice, err = r.Float("base_price"); err != nil {
		return Product{}, err
	}
	return p, nil
}
