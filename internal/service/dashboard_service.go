package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
)

// KPIs are the four headline dashboard numbers.
type KPIs struct {
	// StockValue sums cost_price alone, not cost_price * quantity. That is
	// how the product owner's dashboard has always computed it; kept pending
	// clarification.
	StockValue    float64 `json:"stock_value"`
	TotalProfit   float64 `json:"total_profit"`
	MonthlySales  float64 `json:"monthly_sales"`
	LowStockItems int64   `json:"low_stock_items"`
}

// ProfitEntry is one row of the per-product profit analysis.
type ProfitEntry struct {
	Product   string  `json:"product"`
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
	Profit    float64 `json:"profit"`
	Quantity  int     `json:"quantity"`
}

// TrendPoint is one point of the sales-vs-purchases chart series.
type TrendPoint struct {
	Month     string  `json:"month"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
	Profit    float64 `json:"profit"`
}

// DashboardData is the single aggregate payload the dashboard page renders.
type DashboardData struct {
	KPIs                 KPIs                       `json:"kpis"`
	RecentSales          []model.Sale               `json:"recent_sales"`
	RecentPurchases      []model.Purchase           `json:"recent_purchases"`
	CategoryDistribution []repository.CategoryCount `json:"category_distribution"`
	SalesByMonth         []repository.SaleTotal     `json:"sales_by_month"`
	ProfitAnalysis       []ProfitEntry              `json:"profit_analysis"`
	SalesVsPurchases     []TrendPoint               `json:"sales_vs_purchases"`
}

// SearchResults groups global search hits, at most five per entity type.
type SearchResults struct {
	Products   []model.Product            `json:"products"`
	Sales      []model.Sale               `json:"sales"`
	Purchases  []model.Purchase           `json:"purchases"`
	Categories []repository.CategoryCount `json:"categories"`
}

const (
	recentLimit     = 5
	searchLimit     = 5
	minSearchLength = 2
	trendPoints     = 12
	topProductCount = 10
)

type DashboardService interface {
	// GetDashboardData recomputes every derived view on each call. A storage
	// failure yields the zero payload, never an error: the dashboard always
	// renders.
	GetDashboardData() *DashboardData
	GlobalSearch(query string) (*SearchResults, error)
}

type dashboardService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	saleRepo     repository.SaleRepository
	purchaseRepo repository.PurchaseRepository
}

func NewDashboardService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
) DashboardService {
	return &dashboardService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
	}
}

func emptyDashboard() *DashboardData {
	return &DashboardData{
		RecentSales:          []model.Sale{},
		RecentPurchases:      []model.Purchase{},
		CategoryDistribution: []repository.CategoryCount{},
		SalesByMonth:         []repository.SaleTotal{},
		ProfitAnalysis:       []ProfitEntry{},
		SalesVsPurchases:     []TrendPoint{},
	}
}

func (s *dashboardService) GetDashboardData() *DashboardData {
	data, err := s.buildDashboard()
	if err != nil {
		log.Error().Err(err).Msg("dashboard aggregation failed, serving empty payload")
		return emptyDashboard()
	}
	return data
}

func (s *dashboardService) buildDashboard() (*DashboardData, error) {
	stockValue, err := s.productRepo.SumCostPrice()
	if err != nil {
		return nil, err
	}
	totalSales, err := s.saleRepo.SumSalePrice()
	if err != nil {
		return nil, err
	}
	totalPurchases, err := s.purchaseRepo.SumCostPrice()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthlySales, err := s.saleRepo.SumSalePriceSince(monthStart)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.CountLowStock()
	if err != nil {
		return nil, err
	}

	recentSales, err := s.saleRepo.FindRecent(recentLimit)
	if err != nil {
		return nil, err
	}
	recentPurchases, err := s.purchaseRepo.FindRecent(recentLimit)
	if err != nil {
		return nil, err
	}

	distribution, err := s.categoryRepo.FindAll("")
	if err != nil {
		return nil, err
	}

	// Newest 12 groupings, reversed into chronological order for charting.
	byMoment, err := s.saleRepo.TotalsBySoldAt(trendPoints)
	if err != nil {
		return nil, err
	}
	salesByMonth := make([]repository.SaleTotal, len(byMoment))
	for i, t := range byMoment {
		salesByMonth[len(byMoment)-1-i] = t
	}

	topProducts, err := s.saleRepo.TopProducts(topProductCount)
	if err != nil {
		return nil, err
	}
	profitAnalysis := make([]ProfitEntry, 0, len(topProducts))
	for _, p := range topProducts {
		profitAnalysis = append(profitAnalysis, ProfitEntry{
			Product:   p.Product,
			CostPrice: p.CostPrice,
			SalePrice: p.SalePrice,
			Profit:    p.SalePrice - p.CostPrice,
			Quantity:  p.UnitsSold,
		})
	}

	// Purchases have no per-point grouping here; the chart approximates a
	// flat monthly share of the all-time purchase total, as the dashboard
	// always has.
	monthlyPurchases := totalPurchases / float64(trendPoints)
	trend := make([]TrendPoint, 0, len(salesByMonth))
	for _, t := range salesByMonth {
		trend = append(trend, TrendPoint{
			Month:     t.SoldAt.Format("Jan"),
			Sales:     t.Total,
			Purchases: monthlyPurchases,
			Profit:    t.Total - monthlyPurchases,
		})
	}

	return &DashboardData{
		KPIs: KPIs{
			StockValue:    stockValue,
			TotalProfit:   totalSales - totalPurchases,
			MonthlySales:  monthlySales,
			LowStockItems: lowStock,
		},
		RecentSales:          recentSales,
		RecentPurchases:      recentPurchases,
		CategoryDistribution: distribution,
		SalesByMonth:         salesByMonth,
		ProfitAnalysis:       profitAnalysis,
		SalesVsPurchases:     trend,
	}, nil
}

func emptySearchResults() *SearchResults {
	return &SearchResults{
		Products:   []model.Product{},
		Sales:      []model.Sale{},
		Purchases:  []model.Purchase{},
		Categories: []repository.CategoryCount{},
	}
}

func (s *dashboardService) GlobalSearch(query string) (*SearchResults, error) {
	if len(query) < minSearchLength {
		return emptySearchResults(), nil
	}

	results := emptySearchResults()

	products, err := s.productRepo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	results.Products = products

	sales, err := s.saleRepo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	results.Sales = sales

	purchases, err := s.purchaseRepo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	results.Purchases = purchases

	categories, err := s.categoryRepo.Search(query, searchLimit)
	if err != nil {
		return nil, err
	}
	results.Categories = categories

	return results, nil
}
