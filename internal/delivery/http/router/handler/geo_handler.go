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

// GeoHandlerParams holds dependencies for GeoHandler, injected by Fx.
type GeoHandlerParams struct {
	fx.In

	GeoUC  usecase.GeoUsecase
	Logger *slog.Logger
}

// GeoHandler holds dependencies for proximity search handlers
type GeoHandler struct {
	geoUC  usecase.GeoUsecase
	logger *slog.Logger
}

// NewGeoHandler is the constructor for GeoHandler
func NewGeoHandler(params GeoHandlerParams) *GeoHandler {
	return &GeoHandler{
		geoUC:  params.GeoUC,
		logger: params.Logger,
	}
}

// FindNearby handles the proximity search over active tracking events
func (h *GeoHandler) FindNearby(c echo.Context) error {
	lat, err := parseCoordinate(c.QueryParam("latitud"))
	if err != nil {
		return domainerrors.ErrGeoQueryInvalid.WithDetails("latitud must be a number")
	}

	lng, err := parseCoordinate(c.QueryParam("longitud"))
	if err != nil {
		return domainerrors.ErrGeoQueryInvalid.WithDetails("longitud must be a number")
	}

	radius, err := parseCoordinate(c.QueryParam("radio_metros"))
	if err != nil {
		return domainerrors.ErrGeoQueryInvalid.WithDetails("radio_metros must be a number")
	}

	results, err := h.geoUC.FindNearby(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, results, "Nearby orders retrieved successfully")
}

func parseCoordinate(raw string) (float64, error) {
	return strconv.ParseFloat(raw, 64)
}
