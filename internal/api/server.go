package api

import "github.com/RoyceAzure/lab/purchaseorder/internal/api/handler"

type Server struct {
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
) *Server {
	return &Server{
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
	}
}
