package db

import (
	"context"

	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderCustomer(ctx context.Context, id uint, customer string) error
	UpdateOrderTotal(ctx context.Context, id uint, total decimal.Decimal) error
	AddOrderItems(ctx context.Context, items []model.OrderItem) error
	DeleteOrderItems(ctx context.Context, orderID uint, productIDs []uint) error
	DeleteAllOrderItems(ctx context.Context, orderID uint) error
	HardDeleteOrder(ctx context.Context, id uint) error
	Transaction(ctx context.Context, fn func(tx IOrderRepository) error) error
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單 db
// 只寫入訂單本體, 訂單項目由AddOrderItems寫入
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Omit("Items").Create(order).Error
}

// Read - 根據ID查詢訂單, 連同訂單項目與商品資料
func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).Preload("Items.Product").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.WithContext(ctx).Preload("Items.Product").Order("id").Find(&orders).Error
	return orders, err
}

// Update - 更新訂單客戶名稱
func (s *OrderRepo) UpdateOrderCustomer(ctx context.Context, id uint, customer string) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Update("customer", customer).Error
}

// Update - 更新訂單總金額
func (s *OrderRepo) UpdateOrderTotal(ctx context.Context, id uint, total decimal.Decimal) error {
	return s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).
		Update("total", total).Error
}

// 新增訂單項目
func (s *OrderRepo) AddOrderItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&items).Error
}

// 刪除訂單中指定商品的訂單項目
func (s *OrderRepo) DeleteOrderItems(ctx context.Context, orderID uint, productIDs []uint) error {
	if len(productIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("order_id = ? AND product_id IN ?", orderID, productIDs).
		Delete(&model.OrderItem{}).Error
}

// 刪除訂單所有訂單項目
func (s *OrderRepo) DeleteAllOrderItems(ctx context.Context, orderID uint) error {
	return s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItem{}).Error
}

// Delete - 硬刪除訂單, 級聯刪除在service層顯式處理訂單項目
func (s *OrderRepo) HardDeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Order{}, id).Error
}

// 使用事務來確保資料一致性
// fn內所有操作共用同一個transaction, 任一步驟失敗即全部rollback
func (s *OrderRepo) Transaction(ctx context.Context, fn func(tx IOrderRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&OrderRepo{db: NewDbDao(tx)})
	})
}

var _ IOrderRepository = (*OrderRepo)(nil)
