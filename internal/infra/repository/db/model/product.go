package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"not null;type:varchar(100)"`
	Price      decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	OrderItems []OrderItem     `gorm:"foreignKey:ProductID"` // 一對多, 被訂單項目引用時禁止刪除
}
