// Package handler contains the echo HTTP handlers for the delivery API.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rumbo/internal/delivery/http/response"
	"rumbo/internal/domain/entity"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	Customer struct {
		Name    string  `json:"nombre" validate:"required"`
		Email   string  `json:"email" validate:"required,email"`
		Phone   *string `json:"telefono,omitempty"`
		Address *string `json:"direccion,omitempty"`
	} `json:"cliente" validate:"required"`
	Description        string `json:"descripcion" validate:"required"`
	OriginAddress      string `json:"direccion_origen" validate:"required"`
	DestinationAddress string `json:"direccion_destino" validate:"required"`
}

// UpdateStatusRequest represents the request body for a status transition
type UpdateStatusRequest struct {
	Status string `json:"estado" validate:"required"`
}

// CreateOrder handles creating an order, reusing the customer by email
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.CreateOrderInput{
		Customer: usecase.CustomerInput{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		},
		Description:        req.Description,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
	}

	out, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, out, "Order created successfully")
}

// ListOrders handles listing orders, optionally filtered by status
func (h *OrderHandler) ListOrders(c echo.Context) error {
	var status *entity.OrderStatus
	if raw := c.QueryParam("estado"); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	limit := parseLimit(c.QueryParam("limite"))

	orders, err := h.orderUC.ListOrders(c.Request().Context(), status, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// GetOrder handles retrieving a single order with its customer name
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := parseOrderID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// UpdateStatus handles an order status transition
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := parseOrderID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out, "Order status updated successfully")
}

// GetOrderLocation handles the federated order + latest location read
func (h *OrderHandler) GetOrderLocation(c echo.Context) error {
	orderID, err := parseOrderID(c, "id")
	if err != nil {
		return err
	}

	out, err := h.orderUC.GetOrderLocation(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out, "Order location retrieved successfully")
}

// parseOrderID extracts a positive numeric order ID from a path parameter.
func parseOrderID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("order ID must be a positive integer")
	}

	return id, nil
}

// parseLimit reads an optional limit query parameter; 0 lets the use case
// apply its default.
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
