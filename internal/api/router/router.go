package router

import (
	"github.com/RoyceAzure/lab/purchaseorder/internal/api"
	m "github.com/RoyceAzure/lab/purchaseorder/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Route("/productos", func(r chi.Router) {
			r.Get("/", server.ProductHandler.GetProducts)
			r.Post("/", server.ProductHandler.CreateProduct)
		})

		r.Route("/ordenes", func(r chi.Router) {
			r.Get("/", server.OrderHandler.GetOrders)
			r.Post("/", server.OrderHandler.CreateOrder)
			r.Get("/{id}", server.OrderHandler.GetOrder)
			r.Put("/{id}", server.OrderHandler.UpdateOrder)
			r.Delete("/{id}", server.OrderHandler.DeleteOrder)
		})
	})

	return r
}
