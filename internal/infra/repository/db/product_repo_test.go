package db

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

// SetupSuite 在測試套件開始前執行
func (suite *ProductRepoTestSuite) SetupSuite() {
	conn, err := gorm.Open(sqlite.Open("file:product_repo_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(suite.T(), err)

	dbDao := NewDbDao(conn)
	err = dbDao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = conn
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest 在每個測試前執行
func (suite *ProductRepoTestSuite) SetupTest() {
	// 清空資料表
	suite.db.Exec("DELETE FROM products")
}

func (suite *ProductRepoTestSuite) TearDownSuite() {
	conn, err := suite.db.DB()
	require.NoError(suite.T(), err)
	conn.Close()
}

func (suite *ProductRepoTestSuite) TestCreateAndGetProduct() {
	ctx := context.Background()

	newProduct := &model.Product{
		Name:  "Teclado Mecánico",
		Price: decimal.RequireFromString("1200.00"),
	}
	err := suite.productRepo.CreateProduct(ctx, newProduct)
	require.NoError(suite.T(), err, "Failed to create product")
	require.NotZero(suite.T(), newProduct.ID, "Product ID should be set")

	retrieved, err := suite.productRepo.GetProductByID(ctx, newProduct.ID)
	require.NoError(suite.T(), err, "Failed to get product by ID")
	require.Equal(suite.T(), newProduct.Name, retrieved.Name, "Product name mismatch")
	require.True(suite.T(), newProduct.Price.Equal(retrieved.Price), "Product price mismatch")
}

func (suite *ProductRepoTestSuite) TestGetProductByNameCaseInsensitive() {
	ctx := context.Background()

	newProduct := &model.Product{
		Name:  "Mouse Logitech",
		Price: decimal.RequireFromString("500.00"),
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(ctx, newProduct))

	retrieved, err := suite.productRepo.GetProductByName(ctx, "mouse logitech")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), newProduct.ID, retrieved.ID)

	_, err = suite.productRepo.GetProductByName(ctx, "no existe")
	require.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)
}

func (suite *ProductRepoTestSuite) TestFindExistingProductIDs() {
	ctx := context.Background()

	products := []model.Product{
		{ID: 1, Name: "Producto Uno", Price: decimal.RequireFromString("10.00")},
		{ID: 2, Name: "Producto Dos", Price: decimal.RequireFromString("20.00")},
	}
	require.NoError(suite.T(), suite.db.Create(&products).Error)

	existing, err := suite.productRepo.FindExistingProductIDs(ctx, []uint{1, 2, 99})
	require.NoError(suite.T(), err)
	require.ElementsMatch(suite.T(), []uint{1, 2}, existing)
}

func (suite *ProductRepoTestSuite) TestGetAllProductsOrderedByID() {
	ctx := context.Background()

	products := []model.Product{
		{ID: 2, Name: "Producto Dos", Price: decimal.RequireFromString("20.00")},
		{ID: 1, Name: "Producto Uno", Price: decimal.RequireFromString("10.00")},
	}
	require.NoError(suite.T(), suite.db.Create(&products).Error)

	all, err := suite.productRepo.GetAllProducts(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 2)
	require.EqualValues(suite.T(), 1, all[0].ID)
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}
