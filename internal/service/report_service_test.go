package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichaoui56/service-stock2/internal/model"
)

func TestExportSalesCSV(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t, "Smartphones")
	product := env.seedProduct(t, model.Product{
		Name: "iPhone 15 Pro", SKU: "IP15P-001", Brand: "Apple",
		Quantity: 10, SalePrice: 1199, CategoryID: category.ID,
	})

	_, err := env.ledger.CreateSale(&model.Sale{
		ProductID: product.ID, Quantity: 2, SalePrice: 1199, Customer: "Alice",
	}, testActor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.reports.ExportSales(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row")

	assert.Equal(t, []string{"Date", "Product", "SKU", "Quantity", "Unit Price", "Total", "Customer", "Recorded By"}, records[0])
	row := records[1]
	assert.Equal(t, "iPhone 15 Pro", row[1])
	assert.Equal(t, "IP15P-001", row[2])
	assert.Equal(t, "2", row[3])
	assert.Equal(t, "1199.00", row[4])
	assert.Equal(t, "2398.00", row[5])
	assert.Equal(t, "Alice", row[6])
}

func TestExportPurchasesCSV(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t, "Smartphones")
	product := env.seedProduct(t, model.Product{
		Name: "iPhone 15 Pro", SKU: "IP15P-001", Brand: "Apple", CategoryID: category.ID,
	})

	_, err := env.ledger.CreatePurchase(&model.Purchase{
		ProductID: product.ID, Quantity: 5, CostPrice: 899, Supplier: "Apple Inc",
	}, testActor)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.reports.ExportPurchases(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Apple Inc", records[1][6])
	assert.Equal(t, "4495.00", records[1][5])
}

func TestExportEmptyLedger(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	require.NoError(t, env.reports.ExportSales(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only")
}
