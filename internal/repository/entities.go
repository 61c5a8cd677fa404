package repository

import (
	"context"

	"sheetcrm/internal/model"
	"sheetcrm/internal/sheet"
)

type (
	UserRepository     = Repository[model.User]
	CustomerRepository = Repository[model.Customer]
	ProductRepository  = Repository[model.Product]
	BillRepository     = Repository[model.Bill]
)

// Worksheets names the tab holding each entity
type Worksheets struct {
	Users     string
	Customers string
	Products  string
	Bills     string
}

// DefaultWorksheets are the tab names of the CRM workbook
var DefaultWorksheets = Worksheets{
	Users:     "Users",
	Customers: "Customers",
	Products:  "Products",
	Bills:     "Bills",
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store sheet.Store, worksheet string) UserRepository {
	return NewTable(store, Codec[model.User]{
		Worksheet:  worksheet,
		Columns:    model.UserColumns,
		ToRow:      model.User.ToRow,
		FromRecord: model.UserFromRecord,
	})
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(store sheet.Store, worksheet string) CustomerRepository {
	return NewTable(store, Codec[model.Customer]{
		Worksheet:  worksheet,
		Columns:    model.CustomerColumns,
		ToRow:      model.Customer.ToRow,
		FromRecord: model.CustomerFromRecord,
	})
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(store sheet.Store, worksheet string) ProductRepository {
	return NewTable(store, Codec[model.Product]{
		Worksheet:  worksheet,
		Columns:    model.ProductColumns,
		ToRow:      model.Product.ToRow,
		FromRecord: model.ProductFromRecord,
	})
}

// NewBillRepository creates a new BillRepository
func NewBillRepository(store sheet.Store, worksheet string) BillRepository {
	return NewTable(store, Codec[model.Bill]{
		Worksheet:  worksheet,
		Columns:    model.BillColumns,
		ToRow:      model.Bill.ToRow,
		FromRecord: model.BillFromRecord,
	})
}

// Repositories bundles one repository per worksheet
type Repositories struct {
	Users     UserRepository
	Customers CustomerRepository
	Products  ProductRepository
	Bills     BillRepository
}

// NewRepositories creates the four worksheet repositories over one store
func NewRepositories(store sheet.Store, ws Worksheets) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(store, ws.Users),
		Customers: NewCustomerRepository(store, ws.Customers),
		Products:  NewProductRepository(store, ws.Products),
		Bills:     NewBillRepository(store, ws.Bills),
	}
}

// schemaChecker is satisfied by every Repository
type schemaChecker interface {
	EnsureSchema(ctx context.Context, initEmpty bool) error
}

// EnsureSchemas validates every worksheet header, stopping at the first failure
func (r *Repositories) EnsureSchemas(ctx context.Context, initEmpty bool) error {
	for _, c := range []schemaChecker{r.Users, r.Customers, r.Products, r.Bills} {
		if err := c.EnsureSchema(ctx, initEmpty); err != nil {
			return err
		}
	}
	return nil
}
