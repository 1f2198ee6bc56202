package handler

import (
	"log/slog"
	"net/http"
	"time"

	"rumbo/internal/delivery/http/response"
	"rumbo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Logger     *slog.Logger
}

// TrackingHandler holds dependencies for GPS tracking handlers
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		logger:     params.Logger,
	}
}

// RecordEventRequest represents the request body for a GPS location report
type RecordEventRequest struct {
	Latitude        float64  `json:"latitud" validate:"min=-90,max=90"`
	Longitude       float64  `json:"longitud" validate:"min=-180,max=180"`
	Timestamp       *string  `json:"timestamp,omitempty"`
	SpeedKmh        *float64 `json:"velocidad_kmh,omitempty" validate:"omitempty,min=0"`
	Heading         *float64 `json:"rumbo,omitempty" validate:"omitempty,min=0,max=360"`
	DeviceID        string   `json:"dispositivo_id,omitempty"`
	PrecisionMeters *float64 `json:"precision_metros,omitempty" validate:"omitempty,min=0"`
}

// RecordEvent handles storing a GPS location report for an order
func (h *TrackingHandler) RecordEvent(c echo.Context) error {
	orderID, err := parseOrderID(c, "orden_id")
	if err != nil {
		return err
	}

	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	input := &usecase.RecordTrackingInput{
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		SpeedKmh:        req.SpeedKmh,
		Heading:         req.Heading,
		DeviceID:        req.DeviceID,
		PrecisionMeters: req.PrecisionMeters,
	}

	if req.Timestamp != nil {
		ts, err := parseTimestamp(*req.Timestamp)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "timestamp must be RFC 3339")
		}
		input.Timestamp = &ts
	}

	eventID, err := h.trackingUC.Record(c.Request().Context(), orderID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]string{"tracking_id": eventID}, "Tracking event recorded successfully")
}

// History handles retrieving an order's location history, newest-first
func (h *TrackingHandler) History(c echo.Context) error {
	orderID, err := parseOrderID(c, "orden_id")
	if err != nil {
		return err
	}

	limit := parseLimit(c.QueryParam("limite"))

	history, err := h.trackingUC.History(c.Request().Context(), orderID, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, history, "Tracking history retrieved successfully")
}

// Stats handles computing route statistics for an order
func (h *TrackingHandler) Stats(c echo.Context) error {
	orderID, err := parseOrderID(c, "orden_id")
	if err != nil {
		return err
	}

	stats, err := h.trackingUC.Stats(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "Tracking statistics computed successfully")
}

// Erase handles deleting every tracking event of an order
func (h *TrackingHandler) Erase(c echo.Context) error {
	orderID, err := parseOrderID(c, "orden_id")
	if err != nil {
		return err
	}

	deleted, err := h.trackingUC.Erase(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"documentos_eliminados": deleted}, "Tracking events deleted successfully")
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds.
func parseTimestamp(raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, err
	}

	return ts.UTC(), nil
}
