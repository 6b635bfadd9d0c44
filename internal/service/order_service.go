package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/purchaseorder/internal/errs"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IOrderService interface {
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	CreateOrder(ctx context.Context, customer string, productIDs []uint) (*model.Order, error)
	UpdateOrder(ctx context.Context, id uint, customer string, productIDs []uint) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type OrderService struct {
	orderRepo   db.IOrderRepository
	productRepo db.IProductRepository
}

func NewOrderService(orderRepo db.IOrderRepository, productRepo db.IProductRepository) IOrderService {
	return &OrderService{orderRepo: orderRepo, productRepo: productRepo}
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx)
}

func (o *OrderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := o.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

/*
CreateOrder 創建訂單

驗證 (重複, 存在性, 1~50) -> 寫入訂單本體 -> 寫入訂單項目 -> 重新載入 -> 計算折扣後總額 -> 寫入總額
持久化步驟都在同一個transaction內, 任何失敗全部rollback
*/
func (o *OrderService) CreateOrder(ctx context.Context, customer string, productIDs []uint) (*model.Order, error) {
	customer, err := validateCustomer(customer)
	if err != nil {
		return nil, err
	}
	if err := o.validateOrderProducts(ctx, productIDs); err != nil {
		return nil, err
	}

	var created *model.Order
	err = o.orderRepo.Transaction(ctx, func(tx db.IOrderRepository) error {
		order := &model.Order{
			Customer:  customer,
			CreatedAt: time.Now().UTC(),
			Total:     decimal.Zero,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		items := make([]model.OrderItem, 0, len(productIDs))
		for _, pid := range productIDs {
			items = append(items, model.OrderItem{OrderID: order.ID, ProductID: pid})
		}
		if err := tx.AddOrderItems(ctx, items); err != nil {
			return err
		}

		return o.refreshOrderTotal(ctx, tx, order.ID, &created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

/*
UpdateOrder 更新訂單

productIDs為nil表示不更新訂單項目, 只改客戶名稱
有提供時視為更新後期望的完整商品集合:
刪除不在新集合的項目, 兩邊都有的不動, 新增原本沒有的, 再重算總額
全部在同一個transaction內完成
先載入訂單, 不存在回傳NotFound, 之後才做輸入驗證
*/
func (o *OrderService) UpdateOrder(ctx context.Context, id uint, customer string, productIDs []uint) (*model.Order, error) {
	var updated *model.Order
	err := o.orderRepo.Transaction(ctx, func(tx db.IOrderRepository) error {
		order, err := tx.GetOrderByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrOrderNotFound
			}
			return err
		}

		customer, err = validateCustomer(customer)
		if err != nil {
			return err
		}
		if productIDs != nil {
			if err := o.validateOrderProducts(ctx, productIDs); err != nil {
				return err
			}
		}

		if err := tx.UpdateOrderCustomer(ctx, id, customer); err != nil {
			return err
		}

		if productIDs == nil {
			updated, err = tx.GetOrderByID(ctx, id)
			return err
		}

		current := make([]uint, 0, len(order.Items))
		for _, item := range order.Items {
			current = append(current, item.ProductID)
		}

		toAdd, toRemove := ReconcileItems(current, productIDs)

		if err := tx.DeleteOrderItems(ctx, id, toRemove); err != nil {
			return err
		}
		newItems := make([]model.OrderItem, 0, len(toAdd))
		for _, pid := range toAdd {
			newItems = append(newItems, model.OrderItem{OrderID: id, ProductID: pid})
		}
		if err := tx.AddOrderItems(ctx, newItems); err != nil {
			return err
		}

		return o.refreshOrderTotal(ctx, tx, id, &updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrder 刪除訂單, 顯式級聯刪除訂單項目
func (o *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return o.orderRepo.Transaction(ctx, func(tx db.IOrderRepository) error {
		if _, err := tx.GetOrderByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrOrderNotFound
			}
			return err
		}
		if err := tx.DeleteAllOrderItems(ctx, id); err != nil {
			return err
		}
		return tx.HardDeleteOrder(ctx, id)
	})
}

// 重新載入訂單項目 (含商品資料), 重算折扣後總額並持久化
// out回傳載有最新總額的完整訂單
func (o *OrderService) refreshOrderTotal(ctx context.Context, tx db.IOrderRepository, id uint, out **model.Order) error {
	order, err := tx.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.Product.Price)
	}
	total := ComputeTotal(subtotal, len(order.Items))

	if err := tx.UpdateOrderTotal(ctx, id, total); err != nil {
		return err
	}
	order.Total = total
	*out = order
	return nil
}
