package db

import (
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 初始資料: 6個商品, 2筆範例訂單
// 冪等性: 已有商品資料就跳過
// 範例訂單總額為套用折扣規則後的金額 (小計>500 -> 9折)
func (d *DbDao) SeedData() error {
	var count int64
	if err := d.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []model.Product{
		{ID: 1, Name: "Laptop HP Pavilion", Price: decimal.RequireFromString("15000.00")},
		{ID: 2, Name: "Mouse Logitech", Price: decimal.RequireFromString("500.00")},
		{ID: 3, Name: "Teclado Mecánico", Price: decimal.RequireFromString("1200.00")},
		{ID: 4, Name: "Monitor 24 pulgadas", Price: decimal.RequireFromString("4500.00")},
		{ID: 5, Name: "Impresora Multifuncional", Price: decimal.RequireFromString("8000.00")},
		{ID: 6, Name: "Silla Ergonómica", Price: decimal.RequireFromString("3500.00")},
	}

	orders := []model.Order{
		{
			ID:        1,
			Customer:  "TechSolutions S.A.",
			CreatedAt: time.Date(2025, 10, 1, 10, 30, 0, 0, time.UTC),
			Total:     decimal.RequireFromString("15030.00"), // 16700 * 0.90
		},
		{
			ID:        2,
			Customer:  "Oficinas Corporativas Voultech",
			CreatedAt: time.Date(2025, 10, 2, 14, 15, 0, 0, time.UTC),
			Total:     decimal.RequireFromString("14400.00"), // 16000 * 0.90
		},
	}

	items := []model.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 1},
		{ID: 2, OrderID: 1, ProductID: 2},
		{ID: 3, OrderID: 1, ProductID: 3},
		{ID: 4, OrderID: 2, ProductID: 4},
		{ID: 5, OrderID: 2, ProductID: 5},
		{ID: 6, OrderID: 2, ProductID: 6},
	}

	return d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		for i := range orders {
			if err := tx.Omit("Items").Create(&orders[i]).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return resetIDSequences(tx)
	})
}

// postgres下指定主鍵寫入不會推進序列, 不重設的話後續新增會拿到已使用的ID造成主鍵衝突
func resetIDSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, table := range []string{"products", "orders", "order_items"} {
		stmt := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))",
			table, table,
		)
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
