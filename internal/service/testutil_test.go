package service

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
)

// testEnv wires every repository and service against a throwaway SQLite
// database, one per test.
type testEnv struct {
	db         *gorm.DB
	products   repository.ProductRepository
	categories repository.CategoryRepository
	sales      repository.SaleRepository
	purchases  repository.PurchaseRepository
	users      repository.UserRepository

	inventory InventoryService
	ledger    LedgerService
	dashboard DashboardService
	auth      AuthService
	reports   ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Sale{},
		&model.Purchase{},
	))

	env := &testEnv{
		db:         db,
		products:   repository.NewProductRepo(db),
		categories: repository.NewCategoryRepo(db),
		sales:      repository.NewSaleRepo(db),
		purchases:  repository.NewPurchaseRepo(db),
		users:      repository.NewUserRepo(db),
	}
	env.inventory = NewInventoryService(env.products, env.categories, env.sales, env.purchases, nil)
	env.ledger = NewLedgerService(env.products, env.sales, env.purchases, db, nil)
	env.dashboard = NewDashboardService(env.products, env.categories, env.sales, env.purchases)
	env.auth = NewAuthService(env.users)
	env.reports = NewReportService(env.sales, env.purchases)
	return env
}

var testActor = model.Identity{UserID: 1, Email: "tester@techvault.com", Name: "Tester", Role: "ADMIN"}

func (e *testEnv) seedCategory(t *testing.T, name string) *model.Category {
	t.Helper()
	category, err := e.inventory.CreateCategory(&model.Category{Name: name}, testActor)
	require.NoError(t, err)
	return category
}

func (e *testEnv) seedProduct(t *testing.T, p model.Product) *model.Product {
	t.Helper()
	product, err := e.inventory.CreateProduct(&p, testActor)
	require.NoError(t, err)
	return product
}

func (e *testEnv) seedUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Name: "Seeded", Role: model.RoleUser}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, e.users.Create(user))
	return user
}
