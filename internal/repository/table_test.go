package repository

import (
	"context"
	"testing"

	"sheetcrm/internal/model"
	"sheetcrm/internal/record"
	"sheetcrm/internal/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserTable(t *testing.T, rows ...[]string) (UserRepository, *sheet.MemoryStore) {
	t.Helper()
	store := sheet.NewMemoryStore()
	store.Seed("Users", append([][]string{model.UserColumns}, rows...)...)
	return NewUserRepository(store, "Users"), store
}

func TestTable_CreateThenFind(t *testing.T) {
	ctx := context.Background()
	repo, _ := newUserTable(t)
	u := model.User{ID: "u1", Role: "admin", Name: "Alice"}

	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)
}

func TestTable_FindByID_Missing(t *testing.T) {
	repo, _ := newUserTable(t, []string{"u1", "admin", "Alice", "", "", ""})

	got, err := repo.FindByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTable_Update(t *testing.T) {
	ctx := context.Background()
	repo, store := newUserTable(t,
		[]string{"u1", "admin", "Alice", "", "", ""},
		[]string{"u2", "staff", "Bob", "", "", ""},
	)

	require.NoError(t, repo.Update(ctx, "u2", model.User{ID: "u2", Role: "admin", Name: "Robert"}))

	rows, err := store.GetAll(ctx, "Users")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"u2", "admin", "Robert", "", "", ""}, rows[2])
}

func TestTable_Update_MissingDoesNotAppend(t *testing.T) {
	ctx := context.Background()
	repo, store := newUserTable(t, []string{"u1", "admin", "Alice", "", "", ""})

	err := repo.Update(ctx, "nope", model.User{ID: "nope"})
	assert.ErrorIs(t, err, ErrRowNotFound)

	rows, err := store.GetAll(ctx, "Users")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestTable_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newUserTable(t,
		[]string{"u1", "admin", "Alice", "", "", ""},
		[]string{"u2", "staff", "Bob", "", "", ""},
	)

	require.NoError(t, repo.Delete(ctx, "u1"))
	assert.ErrorIs(t, repo.Delete(ctx, "u1"), ErrRowNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "u2", all[0].ID)
}

func TestTable_FindAll_SkipsBlankRows(t *testing.T) {
	repo, _ := newUserTable(t,
		[]string{"u1", "admin", "Alice"},
		[]string{},
		[]string{"", ""},
		[]string{"u2", "staff", "Bob"},
	)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "", all[0].Phone)
}

func TestTable_DecodeErrorIsReported(t *testing.T) {
	store := sheet.NewMemoryStore()
	row := model.Product{ID: "p1"}.ToRow()
	row[7] = "cheap"
	store.Seed("Products", model.ProductColumns, row)
	repo := NewProductRepository(store, "Products")

	_, err := repo.FindByID(context.Background(), "p1")
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrCoercion)
	assert.Contains(t, err.Error(), "Products row 2")
}

func TestSnapshot_Lookup(t *testing.T) {
	store := sheet.NewMemoryStore()
	store.Seed("Products", model.ProductColumns,
		model.Product{ID: "p1", MSRP: 10, Taxes: 1}.ToRow(),
		model.Product{ID: "p2", MSRP: 20, Taxes: 2}.ToRow(),
	)
	repo := NewProductRepository(store, "Products")

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)

	p, err := snap.Lookup("p2")
	require.NoError(t, err)
	assert.Equal(t, 20.0, p.MSRP)

	_, err = snap.Lookup("p3")
	assert.ErrorIs(t, err, ErrRowNotFound)
}

func TestTable_HeaderNamesAreNormalised(t *testing.T) {
	store := sheet.NewMemoryStore()
	store.Seed("Users",
		[]string{"ID", "Role", "Name", "Phone", "Login Email", "Hashed Password"},
		[]string{"u1", "admin", "Alice", "1", "a@x.io", "h"},
	)
	repo := NewUserRepository(store, "Users")

	require.NoError(t, repo.EnsureSchema(context.Background(), false))
	got, err := repo.FindByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", got.LoginEmail)
}

func TestTable_EnsureSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("drift", func(t *testing.T) {
		store := sheet.NewMemoryStore()
		store.Seed("Users", []string{"id", "name", "role"})
		err := NewUserRepository(store, "Users").EnsureSchema(ctx, true)
		assert.ErrorIs(t, err, record.ErrSchemaDrift)
	})

	t.Run("empty without init", func(t *testing.T) {
		store := sheet.NewMemoryStore("Users")
		err := NewUserRepository(store, "Users").EnsureSchema(ctx, false)
		assert.ErrorIs(t, err, ErrEmptyWorksheet)
	})

	t.Run("empty with init writes header", func(t *testing.T) {
		store := sheet.NewMemoryStore("Users")
		require.NoError(t, NewUserRepository(store, "Users").EnsureSchema(ctx, true))
		rows, err := store.GetAll(ctx, "Users")
		require.NoError(t, err)
		assert.Equal(t, [][]string{model.UserColumns}, rows)
	})
}

func TestRepositories_EnsureSchemas(t *testing.T) {
	ws := DefaultWorksheets
	store := sheet.NewMemoryStore(ws.Users, ws.Customers, ws.Products, ws.Bills)
	repos := NewRepositories(store, ws)

	require.NoError(t, repos.EnsureSchemas(context.Background(), true))
	require.NoError(t, repos.EnsureSchemas(context.Background(), false))
}

func TestTable_CellsRoundTripVerbatim(t *testing.T) {
	ctx := context.Background()
	repo, _ := newUserTable(t, []string{"u1", "admin", "Alice", "", "", ""})
	u := model.User{ID: " u1 ", Role: "staff", Name: "  Bob", Phone: "007 "}

	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.FindByID(ctx, " u1 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u, *got)

	other, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", other.Name)
}
