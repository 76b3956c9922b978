package service

import (
	"context"

	"go.uber.org/zap"

	"northwind/internal/domain"
	apperrors "northwind/internal/errors"
)

type OrderRepository interface {
	ListOrderIDs(ctx context.Context, skip, count int) ([]int64, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	AddOrder(ctx context.Context, order *domain.Order) (int64, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	RemoveOrder(ctx context.Context, id int64) error
}

// OrderService fronts the repository with operation logging. Typed
// errors (invalid argument, validation, not found, parse) pass through
// untouched so callers can branch on kind; anything else is wrapped as
// an internal error.
type OrderService struct {
	repo   OrderRepository
	logger *zap.Logger
}

func NewOrderService(repo OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:   repo,
		logger: logger,
	}
}

func (s *OrderService) ListOrderIDs(ctx context.Context, skip, count int) ([]int64, error) {
	ids, err := s.repo.ListOrderIDs(ctx, skip, count)
	if err != nil {
		s.logger.Warn("listing order ids failed", zap.Int("skip", skip), zap.Int("count", count), zap.Error(err))
		return nil, s.wrap("listing order ids", err)
	}

	s.logger.Info("order ids listed", zap.Int("skip", skip), zap.Int("count", count), zap.Int("returned", len(ids)))
	return ids, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		s.logger.Warn("fetching order failed", zap.Int64("orderId", id), zap.Error(err))
		return nil, s.wrap("fetching order", err)
	}

	s.logger.Info("order fetched", zap.Int64("orderId", id), zap.Int("detailCount", len(order.Details)))
	return order, nil
}

func (s *OrderService) AddOrder(ctx context.Context, order *domain.Order) (int64, error) {
	id, err := s.repo.AddOrder(ctx, order)
	if err != nil {
		s.logger.Warn("adding order failed", zap.Int64("orderId", order.ID), zap.Error(err))
		return 0, s.wrap("adding order", err)
	}

	s.logger.Info("order added", zap.Int64("orderId", id), zap.Int("detailCount", len(order.Details)))
	return id, nil
}

func (s *OrderService) UpdateOrder(ctx context.Context, order *domain.Order) error {
	if err := s.repo.UpdateOrder(ctx, order); err != nil {
		s.logger.Warn("updating order failed", zap.Int64("orderId", order.ID), zap.Error(err))
		return s.wrap("updating order", err)
	}

	s.logger.Info("order updated", zap.Int64("orderId", order.ID), zap.Int("detailCount", len(order.Details)))
	return nil
}

func (s *OrderService) RemoveOrder(ctx context.Context, id int64) error {
	if err := s.repo.RemoveOrder(ctx, id); err != nil {
		s.logger.Warn("removing order failed", zap.Int64("orderId", id), zap.Error(err))
		return s.wrap("removing order", err)
	}

	s.logger.Info("order removed", zap.Int64("orderId", id))
	return nil
}

func (s *OrderService) wrap(op string, err error) error {
	if _, ok := apperrors.IsInvalidArgumentError(err); ok {
		return err
	}
	if _, ok := apperrors.IsValidationError(err); ok {
		return err
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		return err
	}
	if _, ok := apperrors.IsParseError(err); ok {
		return err
	}
	return apperrors.NewInternalError(op, err)
}
