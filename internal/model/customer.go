package model

import "sheetcrm/internal/record"

// Customer represents a customer in the Customers worksheet
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

var CustomerColumns = []string{"id", "name", "phone", "email", "address", "created_at", "updated_at"}

func (c Customer) ToRow() []string {
	return []string{c.ID, c.Name, c.Phone, c.Email, c.Address, c.CreatedAt, c.UpdatedAt}
}

func CustomerFromRecord(r record.Record) (Customer, error) {
	var c Customer
	fields := []struct {
		column string
		dst    *string
	}{
		{"id", &c.ID},
		{"name", &c.Name},
		{"phone", &c.Phone},
		{"email", &c.Email},
		{"address", &c.Address},
		{"created_at", &c.CreatedAt},
		{"updated_at", &c.UpdatedAt},
	}
	for _, f := range fields {
		v, err := r.String(f.column)
		if err != nil {
			return Customer{}, err
		}
		*f.dst = v
	}
	return c, nil
}
