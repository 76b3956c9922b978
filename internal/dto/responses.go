package dto

import "northwind/internal/errors"

type ListOrderIDsResponse struct {
	OrderIDs []int64 `json:"orderIds"`
}

type AddOrderResponse struct {
	ID int64 `json:"id"`
}

type ErrorResponse struct {
	TraceID string                    `json:"traceId"`
	Message string                    `json:"message"`
	Details []errors.ValidationDetail `json:"details,omitempty"`
}
