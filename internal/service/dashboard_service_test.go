package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichaoui56/service-stock2/internal/model"
)

func seedDashboardFixture(t *testing.T, env *testEnv) (phone, tablet *model.Product) {
	t.Helper()
	smartphones := env.seedCategory(t, "Smartphones")
	tablets := env.seedCategory(t, "Tablets")

	phone = env.seedProduct(t, model.Product{
		Name: "iPhone 15 Pro", SKU: "IP15P-001", Brand: "Apple",
		CostPrice: 899, SalePrice: 1199, Quantity: 25, MinStock: 5,
		CategoryID: smartphones.ID,
	})
	tablet = env.seedProduct(t, model.Product{
		Name: "iPad Air", SKU: "IPA-001", Brand: "Apple",
		CostPrice: 449, SalePrice: 599, Quantity: 2, MinStock: 5,
		CategoryID: tablets.ID,
	})
	return phone, tablet
}

func TestDashboardKPIs(t *testing.T) {
	env := newTestEnv(t)
	phone, _ := seedDashboardFixture(t, env)

	_, err := env.ledger.CreateSale(&model.Sale{ProductID: phone.ID, Quantity: 2, SalePrice: 1199}, testActor)
	require.NoError(t, err)
	_, err = env.ledger.CreatePurchase(&model.Purchase{ProductID: phone.ID, Quantity: 10, CostPrice: 899, Supplier: "Apple Inc"}, testActor)
	require.NoError(t, err)

	data := env.dashboard.GetDashboardData()

	// Stock value is the sum of cost prices, not cost x quantity.
	assert.InDelta(t, 899.0+449.0, data.KPIs.StockValue, 0.001)
	assert.InDelta(t, 1199.0-899.0, data.KPIs.TotalProfit, 0.001)
	assert.InDelta(t, 1199.0, data.KPIs.MonthlySales, 0.001, "sale falls in the current month")
	assert.EqualValues(t, 1, data.KPIs.LowStockItems, "iPad Air quantity 2 <= minStock 5")
}

func TestDashboardRecentAndDistribution(t *testing.T) {
	env := newTestEnv(t)
	phone, tablet := seedDashboardFixture(t, env)

	for i := 0; i < 7; i++ {
		_, err := env.ledger.CreateSale(&model.Sale{ProductID: phone.ID, Quantity: 1, SalePrice: 1199}, testActor)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := env.ledger.CreateSale(&model.Sale{ProductID: tablet.ID, Quantity: 1, SalePrice: 599, Customer: "Carol"}, testActor)
	require.NoError(t, err)

	data := env.dashboard.GetDashboardData()

	require.Len(t, data.RecentSales, 5)
	assert.Equal(t, "Carol", data.RecentSales[0].Customer, "most recent sale first")
	assert.Equal(t, "iPad Air", data.RecentSales[0].Product.Name)

	require.Len(t, data.CategoryDistribution, 2)
	assert.Equal(t, "Smartphones", data.CategoryDistribution[0].Name)
	assert.EqualValues(t, 1, data.CategoryDistribution[0].ProductCount)
}

func TestDashboardSalesSeriesChronological(t *testing.T) {
	env := newTestEnv(t)
	phone, _ := seedDashboardFixture(t, env)

	for i := 0; i < 3; i++ {
		_, err := env.ledger.CreateSale(&model.Sale{ProductID: phone.ID, Quantity: 1, SalePrice: 1199}, testActor)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	data := env.dashboard.GetDashboardData()

	require.Len(t, data.SalesByMonth, 3)
	for i := 1; i < len(data.SalesByMonth); i++ {
		assert.True(t, data.SalesByMonth[i].SoldAt.After(data.SalesByMonth[i-1].SoldAt),
			"series reversed into chronological order")
	}

	require.Len(t, data.SalesVsPurchases, 3)
	assert.Equal(t, time.Now().Format("Jan"), data.SalesVsPurchases[0].Month)
}

func TestDashboardProfitAnalysis(t *testing.T) {
	env := newTestEnv(t)
	phone, tablet := seedDashboardFixture(t, env)

	for i := 0; i < 3; i++ {
		_, err := env.ledger.CreateSale(&model.Sale{ProductID: phone.ID, Quantity: 2, SalePrice: 1199}, testActor)
		require.NoError(t, err)
	}
	_, err := env.ledger.CreateSale(&model.Sale{ProductID: tablet.ID, Quantity: 1, SalePrice: 599}, testActor)
	require.NoError(t, err)

	data := env.dashboard.GetDashboardData()

	require.NotEmpty(t, data.ProfitAnalysis)
	top := data.ProfitAnalysis[0]
	assert.Equal(t, "iPhone 15 Pro", top.Product, "most sales first")
	assert.InDelta(t, 1199.0-899.0, top.Profit, 0.001)
	assert.Equal(t, 6, top.Quantity, "cumulative units sold")
}

func TestGlobalSearch(t *testing.T) {
	env := newTestEnv(t)
	phone, _ := seedDashboardFixture(t, env)

	_, err := env.ledger.CreateSale(&model.Sale{ProductID: phone.ID, Quantity: 1, SalePrice: 1199, Customer: "Ipswich Retail"}, testActor)
	require.NoError(t, err)
	_, err = env.ledger.CreatePurchase(&model.Purchase{ProductID: phone.ID, Quantity: 5, CostPrice: 899, Supplier: "iParts Ltd"}, testActor)
	require.NoError(t, err)

	results, err := env.dashboard.GlobalSearch("ip")
	require.NoError(t, err)

	require.NotEmpty(t, results.Products)
	names := make([]string, 0, len(results.Products))
	for _, p := range results.Products {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "iPhone 15 Pro")
	assert.NotEmpty(t, results.Sales, "customer match")
	assert.NotEmpty(t, results.Purchases, "supplier match")
}

func TestGlobalSearchShortQuery(t *testing.T) {
	env := newTestEnv(t)
	seedDashboardFixture(t, env)

	for _, q := range []string{"", "i"} {
		results, err := env.dashboard.GlobalSearch(q)
		require.NoError(t, err)
		assert.Empty(t, results.Products)
		assert.Empty(t, results.Sales)
		assert.Empty(t, results.Purchases)
		assert.Empty(t, results.Categories)
	}
}

func TestGlobalSearchCapsResults(t *testing.T) {
	env := newTestEnv(t)
	category := env.seedCategory(t, "Widgets")

	for i := 0; i < 8; i++ {
		env.seedProduct(t, model.Product{
			Name: "Widget Model", SKU: "WID-00" + string(rune('0'+i)), Brand: "Acme",
			CategoryID: category.ID,
		})
	}

	results, err := env.dashboard.GlobalSearch("widget")
	require.NoError(t, err)
	assert.Len(t, results.Products, 5, "capped at five per entity type")
}
