package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/purchaseorder/internal/errs"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type OrderServiceTestSuite struct {
	suite.Suite
	db           *gorm.DB
	orderService IOrderService
}

// SetupSuite 在測試套件開始前執行
func (suite *OrderServiceTestSuite) SetupSuite() {
	// 每個suite使用獨立的in-memory資料庫
	conn, err := gorm.Open(sqlite.Open("file:order_service_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(suite.T(), err)

	dbDao := db.NewDbDao(conn)
	err = dbDao.InitMigrate()
	require.NoError(suite.T(), err)

	suite.db = conn
	suite.orderService = NewOrderService(db.NewOrderRepo(dbDao), db.NewProductRepo(dbDao))
}

// SetupTest 在每個測試前執行
func (suite *OrderServiceTestSuite) SetupTest() {
	// 清空資料表並重建商品目錄
	suite.db.Exec("DELETE FROM order_items")
	suite.db.Exec("DELETE FROM orders")
	suite.db.Exec("DELETE FROM products")

	products := []model.Product{
		{ID: 1, Name: "Laptop HP Pavilion", Price: decimal.RequireFromString("15000.00")},
		{ID: 2, Name: "Mouse Logitech", Price: decimal.RequireFromString("500.00")},
		{ID: 3, Name: "Teclado Mecánico", Price: decimal.RequireFromString("1200.00")},
		{ID: 4, Name: "Monitor 24 pulgadas", Price: decimal.RequireFromString("4500.00")},
		{ID: 5, Name: "Impresora Multifuncional", Price: decimal.RequireFromString("8000.00")},
		{ID: 6, Name: "Silla Ergonómica", Price: decimal.RequireFromString("3500.00")},
	}
	err := suite.db.Create(&products).Error
	require.NoError(suite.T(), err)
}

func (suite *OrderServiceTestSuite) TearDownSuite() {
	conn, err := suite.db.DB()
	require.NoError(suite.T(), err)
	conn.Close()
}

func (suite *OrderServiceTestSuite) orderCount() int64 {
	var count int64
	suite.db.Model(&model.Order{}).Count(&count)
	return count
}

func (suite *OrderServiceTestSuite) itemCount() int64 {
	var count int64
	suite.db.Model(&model.OrderItem{}).Count(&count)
	return count
}

func (suite *OrderServiceTestSuite) TestCreateOrderComputesDiscountedTotal() {
	ctx := context.Background()

	order, err := suite.orderService.CreateOrder(ctx, "TechSolutions S.A.", []uint{1, 2, 3})
	require.NoError(suite.T(), err)
	require.NotZero(suite.T(), order.ID)
	require.Len(suite.T(), order.Items, 3)
	require.False(suite.T(), order.CreatedAt.IsZero())

	// 16700 > 500 -> 10%折扣
	expected := decimal.RequireFromString("15030.00")
	require.True(suite.T(), expected.Equal(order.Total),
		"expected %s, got %s", expected.String(), order.Total.String())

	// 持久化的總額與回傳一致
	persisted, err := suite.orderService.GetOrder(ctx, order.ID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), expected.Equal(persisted.Total))
}

func (suite *OrderServiceTestSuite) TestCreateOrderSmallSubtotalNoDiscount() {
	ctx := context.Background()

	// 只有Mouse: 500 不大於 500, 無折扣
	order, err := suite.orderService.CreateOrder(ctx, "Cliente Chico", []uint{2})
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.RequireFromString("500.00").Equal(order.Total))
}

func (suite *OrderServiceTestSuite) TestCreateOrderDuplicateProductsRejected() {
	ctx := context.Background()

	_, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{1, 2, 1})
	require.Error(suite.T(), err)

	ve, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)
	require.Equal(suite.T(), []uint{1}, ve.ProductIDs)

	// 不得有任何資料被持久化
	require.Zero(suite.T(), suite.orderCount())
	require.Zero(suite.T(), suite.itemCount())
}

func (suite *OrderServiceTestSuite) TestCreateOrderMissingProductsRejected() {
	ctx := context.Background()

	_, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{1, 99, 100})
	require.Error(suite.T(), err)

	ve, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)
	require.ElementsMatch(suite.T(), []uint{99, 100}, ve.ProductIDs)

	require.Zero(suite.T(), suite.orderCount())
	require.Zero(suite.T(), suite.itemCount())
}

func (suite *OrderServiceTestSuite) TestCreateOrderEmptyRejected() {
	ctx := context.Background()

	_, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{})
	require.Error(suite.T(), err)
	_, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)
}

func (suite *OrderServiceTestSuite) TestCreateOrderTooManyProductsRejected() {
	ctx := context.Background()

	productIDs := make([]uint, 0, 51)
	for i := uint(1); i <= 51; i++ {
		productIDs = append(productIDs, i)
	}

	_, err := suite.orderService.CreateOrder(ctx, "Cliente", productIDs)
	require.Error(suite.T(), err)
	_, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)
	require.Zero(suite.T(), suite.orderCount())
}

func (suite *OrderServiceTestSuite) TestCreateOrderInvalidCustomerRejected() {
	ctx := context.Background()

	_, err := suite.orderService.CreateOrder(ctx, "x", []uint{1})
	require.Error(suite.T(), err)
	_, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)
	require.Zero(suite.T(), suite.orderCount())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderReplacesItems() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "TechSolutions S.A.", []uint{1, 2, 3})
	require.NoError(suite.T(), err)

	oldItemIDs := make(map[uint]struct{})
	for _, item := range created.Items {
		oldItemIDs[item.ID] = struct{}{}
	}

	updated, err := suite.orderService.UpdateOrder(ctx, created.ID, "TechSolutions S.A.", []uint{4, 5, 6})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), updated.Items, 3)

	// 舊訂單項目ID不得重現
	for _, item := range updated.Items {
		_, existed := oldItemIDs[item.ID]
		require.False(suite.T(), existed, "old order item id %d reappeared", item.ID)
	}

	gotProducts := make([]uint, 0, 3)
	for _, item := range updated.Items {
		gotProducts = append(gotProducts, item.ProductID)
	}
	require.ElementsMatch(suite.T(), []uint{4, 5, 6}, gotProducts)

	// 16000 * 0.90
	expected := decimal.RequireFromString("14400.00")
	require.True(suite.T(), expected.Equal(updated.Total),
		"expected %s, got %s", expected.String(), updated.Total.String())

	// 舊項目實際從資料庫移除
	require.EqualValues(suite.T(), 3, suite.itemCount())
}

func (suite *OrderServiceTestSuite) TestUpdateOrderKeepsIntersectionItemIDs() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{1, 2})
	require.NoError(suite.T(), err)

	var keptItemID uint
	for _, item := range created.Items {
		if item.ProductID == 2 {
			keptItemID = item.ID
		}
	}
	require.NotZero(suite.T(), keptItemID)

	updated, err := suite.orderService.UpdateOrder(ctx, created.ID, "Cliente", []uint{2, 3})
	require.NoError(suite.T(), err)

	// 交集的商品保留原本的訂單項目ID
	found := false
	for _, item := range updated.Items {
		if item.ProductID == 2 {
			require.Equal(suite.T(), keptItemID, item.ID)
			found = true
		}
	}
	require.True(suite.T(), found)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderWithoutItemsKeepsMembership() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "Cliente Original", []uint{1, 2, 3})
	require.NoError(suite.T(), err)

	// productIDs為nil -> 只更新客戶名稱
	updated, err := suite.orderService.UpdateOrder(ctx, created.ID, "Cliente Nuevo", nil)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Cliente Nuevo", updated.Customer)
	require.Len(suite.T(), updated.Items, 3)
	require.True(suite.T(), created.Total.Equal(updated.Total))
}

func (suite *OrderServiceTestSuite) TestUpdateOrderNotFound() {
	ctx := context.Background()

	_, err := suite.orderService.UpdateOrder(ctx, 9999, "Cliente", nil)
	require.ErrorIs(suite.T(), err, errs.ErrOrderNotFound)
}

// 訂單不存在時優先回傳NotFound, 不做輸入驗證
func (suite *OrderServiceTestSuite) TestUpdateOrderNotFoundBeforeValidation() {
	ctx := context.Background()

	// 重複商品的無效請求
	_, err := suite.orderService.UpdateOrder(ctx, 9999, "Cliente", []uint{1, 1})
	require.ErrorIs(suite.T(), err, errs.ErrOrderNotFound)

	// 無效客戶名稱
	_, err = suite.orderService.UpdateOrder(ctx, 9999, "", []uint{1})
	require.ErrorIs(suite.T(), err, errs.ErrOrderNotFound)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderInvalidProductsLeavesStateUnchanged() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "Cliente Original", []uint{1, 2})
	require.NoError(suite.T(), err)

	_, err = suite.orderService.UpdateOrder(ctx, created.ID, "Cliente Nuevo", []uint{1, 999})
	require.Error(suite.T(), err)
	_, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)

	// 訂單維持更新前的狀態
	reloaded, err := suite.orderService.GetOrder(ctx, created.ID)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Cliente Original", reloaded.Customer)
	require.Len(suite.T(), reloaded.Items, 2)
	require.True(suite.T(), created.Total.Equal(reloaded.Total))
}

func (suite *OrderServiceTestSuite) TestUpdateOrderEmptyItemListRejected() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{1})
	require.NoError(suite.T(), err)

	// 空清單跟nil不同, 空訂單不允許
	_, err = suite.orderService.UpdateOrder(ctx, created.ID, "Cliente", []uint{})
	require.Error(suite.T(), err)
	_, ok := errs.AsValidation(err)
	require.True(suite.T(), ok)

	reloaded, err := suite.orderService.GetOrder(ctx, created.ID)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), reloaded.Items, 1)
}

func (suite *OrderServiceTestSuite) TestDeleteOrderCascadesItems() {
	ctx := context.Background()

	created, err := suite.orderService.CreateOrder(ctx, "Cliente", []uint{1, 2, 3})
	require.NoError(suite.T(), err)

	err = suite.orderService.DeleteOrder(ctx, created.ID)
	require.NoError(suite.T(), err)

	_, err = suite.orderService.GetOrder(ctx, created.ID)
	require.ErrorIs(suite.T(), err, errs.ErrOrderNotFound)
	require.Zero(suite.T(), suite.itemCount())
}

func (suite *OrderServiceTestSuite) TestDeleteOrderNotFound() {
	ctx := context.Background()

	err := suite.orderService.DeleteOrder(ctx, 9999)
	require.ErrorIs(suite.T(), err, errs.ErrOrderNotFound)
	require.Zero(suite.T(), suite.orderCount())
}

func (suite *OrderServiceTestSuite) TestGetAllOrders() {
	ctx := context.Background()

	_, err := suite.orderService.CreateOrder(ctx, "Cliente Uno", []uint{1})
	require.NoError(suite.T(), err)
	_, err = suite.orderService.CreateOrder(ctx, "Cliente Dos", []uint{2, 3})
	require.NoError(suite.T(), err)

	orders, err := suite.orderService.GetAllOrders(ctx)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), orders, 2)
	// 訂單項目連同商品資料一起載入
	require.Equal(suite.T(), "Laptop HP Pavilion", orders[0].Items[0].Product.Name)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
