package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"northwind/internal/order/controller"
)

func NewRouter(orders *controller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orders.ListOrderIDs)
		r.Post("/", orders.AddOrder)
		r.Get("/{orderId}", orders.GetOrder)
		r.Put("/{orderId}", orders.UpdateOrder)
		r.Delete("/{orderId}", orders.RemoveOrder)
	})

	return r
}
