package order

import (
	"database/sql"

	"go.uber.org/zap"

	"northwind/internal/order/controller"
	"northwind/internal/order/repository"
	"northwind/internal/order/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.OrderController {
	repo := repository.NewSQLiteOrderRepository(db)
	svc := service.NewOrderService(repo, logger)
	return controller.NewOrderController(svc, logger)
}
