package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"northwind/internal/domain"
	"northwind/internal/dto"
	apperrors "northwind/internal/errors"
)

type OrderService interface {
	ListOrderIDs(ctx context.Context, skip, count int) ([]int64, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	AddOrder(ctx context.Context, order *domain.Order) (int64, error)
	UpdateOrder(ctx context.Context, order *domain.Order) error
	RemoveOrder(ctx context.Context, id int64) error
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

func (c *OrderController) ListOrderIDs(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	skip, err := strconv.Atoi(r.URL.Query().Get("skip"))
	if err != nil {
		logger.Warn("invalid skip parameter", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "skip must be an integer", nil)
		return
	}
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		logger.Warn("invalid count parameter", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "count must be an integer", nil)
		return
	}

	ids, err := c.service.ListOrderIDs(r.Context(), skip, count)
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ListOrderIDsResponse{OrderIDs: ids})
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, traceID, logger)
	if !ok {
		return
	}

	order, err := c.service.GetOrder(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderFromDomain(order))
}

func (c *OrderController) AddOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.Order
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}

	id, err := c.service.AddOrder(r.Context(), req.ToDomain())
	if err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.AddOrderResponse{ID: id})
}

func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, traceID, logger)
	if !ok {
		return
	}

	var req dto.Order
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "request body must be valid JSON", nil)
		return
	}
	req.ID = id

	if err := c.service.UpdateOrder(r.Context(), req.ToDomain()); err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) RemoveOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	id, ok := c.orderID(w, r, traceID, logger)
	if !ok {
		return
	}

	if err := c.service.RemoveOrder(r.Context(), id); err != nil {
		c.handleServiceError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) orderID(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		logger.Warn("invalid orderId in path", zap.Error(err))
		c.writeError(w, traceID, http.StatusBadRequest, "orderId must be an integer", nil)
		return 0, false
	}
	return id, true
}

func (c *OrderController) handleServiceError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if iae, ok := apperrors.IsInvalidArgumentError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, iae.Message, nil)
		return
	}
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeError(w, traceID, http.StatusBadRequest, ve.Message, ve.Details)
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeError(w, traceID, http.StatusNotFound, nfe.Message, nil)
		return
	}

	logger.Error("internal error", zap.Error(err))
	c.writeError(w, traceID, http.StatusInternalServerError, "internal error", nil)
}

func (c *OrderController) writeError(w http.ResponseWriter, traceID string, status int, message string, details []apperrors.ValidationDetail) {
	c.writeJSON(w, status, dto.ErrorResponse{
		TraceID: traceID,
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		c.logger.Error("encoding response", zap.Error(err))
	}
}
