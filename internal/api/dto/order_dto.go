package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID        uint            `json:"id"`
	Customer  string          `json:"cliente"`
	CreatedAt time.Time       `json:"fechaCreacion"`
	Total     decimal.Decimal `json:"total"`
	Items     []OrderItemDTO  `json:"ordenProductos"`
}

type OrderItemDTO struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"productoId"`
	ProductName string `json:"productoNombre"`
}

type CreateOrderItemDTO struct {
	ProductID uint `json:"productoId"`
}

type CreateOrderDTO struct {
	Customer string               `json:"cliente"`
	Items    []CreateOrderItemDTO `json:"ordenProductos"`
}

// UpdateOrderDTO Items為nil表示不更新訂單項目
type UpdateOrderDTO struct {
	Customer string               `json:"cliente"`
	Items    []CreateOrderItemDTO `json:"ordenProductos"`
}
