package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uint            `gorm:"primaryKey"`
	Customer  string          `gorm:"not null;type:varchar(100)"`
	CreatedAt time.Time       `gorm:"not null"` // UTC, 只在建立時設定
	Total     decimal.Decimal `gorm:"not null;type:decimal(12,2)"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"` // 一對多，級聯刪除
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey"`
	OrderID   uint    `gorm:"not null;index"`
	ProductID uint    `gorm:"not null"`
	Product   Product `gorm:"foreignKey:ProductID"`
}
