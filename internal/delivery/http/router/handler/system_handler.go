package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"rumbo/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 5 * time.Second

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Mongo  *mongo.Database
	Logger *slog.Logger
}

// SystemHandler exposes operational endpoints.
type SystemHandler struct {
	db     *gorm.DB
	mongo  *mongo.Database
	logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		db:     params.DB,
		mongo:  params.Mongo,
		logger: params.Logger,
	}
}

// HealthCheck pings both backing stores and reports per-store status.
// Any failing store turns the overall response into a 503.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	status := map[string]string{
		"postgres": "ok",
		"mongodb":  "ok",
	}
	healthy := true

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Postgres health check failed", slog.Any("error", err))
		status["postgres"] = "unavailable"
		healthy = false
	}

	if err := h.mongo.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.logger.Warn("MongoDB health check failed", slog.Any("error", err))
		status["mongodb"] = "unavailable"
		healthy = false
	}

	if !healthy {
		return response.ServiceUnavailable(c, "SERVICE_UNAVAILABLE", "One or more backing stores are unreachable")
	}

	return response.Success(c, http.StatusOK, status, "Service is healthy")
}
