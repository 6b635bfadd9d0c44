package dto

import "github.com/shopspring/decimal"

type ProductDTO struct {
	ID    uint            `json:"id"`
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
}

type CreateProductDTO struct {
	Name  string          `json:"nombre"`
	Price decimal.Decimal `json:"precio"`
}
