package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"rumbo/internal/delivery/http/response"
	domainerrors "rumbo/internal/domain/errors"
	"rumbo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// ListCustomers handles listing customers with their order counts
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	limit := parseLimit(c.QueryParam("limite"))

	customers, err := h.customerUC.ListCustomers(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, customers, "Customers retrieved successfully")
}

// GetCustomerWithOrders handles retrieving one customer and their orders
func (h *CustomerHandler) GetCustomerWithOrders(c echo.Context) error {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || customerID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("customer ID must be a positive integer")
	}

	out, err := h.customerUC.GetCustomerWithOrders(c.Request().Context(), customerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out, "Customer retrieved successfully")
}
