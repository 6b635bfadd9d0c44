package handler

import (
	"github.com/RoyceAzure/lab/purchaseorder/internal/api/dto"
	"github.com/RoyceAzure/lab/purchaseorder/internal/infra/repository/db/model"
)

func convertProductToDTO(product model.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
	}
}

func convertOrderToDTO(order model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
		})
	}
	return dto.OrderDTO{
		ID:        order.ID,
		Customer:  order.Customer,
		CreatedAt: order.CreatedAt,
		Total:     order.Total,
		Items:     items,
	}
}
