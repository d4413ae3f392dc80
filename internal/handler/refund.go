package handler

import (
	"guestpost-marketplace/internal/dto"
	"guestpost-marketplace/internal/service"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type RefundHandler struct {
	refundService service.RefundService
}

func NewRefundHandler(refundService service.RefundService) *RefundHandler {
	return &RefundHandler{
		refundService: refundService,
	}
}

func (h *RefundHandler) GetSuggestedRefund(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderId")

	calculation, err := h.refundService.CalculateSuggestedRefund(ctx, orderID)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, calculation)
}

func (h *RefundHandler) GetRefundPolicy(c echo.Context) error {
	orderType := c.QueryParam("order_type")
	if orderType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "order_type is required")
	}

	daysOld, err := strconv.Atoi(c.QueryParam("days_old"))
	if err != nil || daysOld < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "days_old must be a non-negative integer")
	}

	return c.JSON(http.StatusOK, h.refundService.GetRefundPolicy(orderType, daysOld))
}

func (h *RefundHandler) CalculateBulkRefund(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BulkRefundRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if len(req.OrderIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "order_ids is required")
	}

	result, err := h.refundService.CalculateBulkOrderRefund(ctx, req.OrderIDs)
	if err != nil {
		return mapError(err)
	}

	return c.JSON(http.StatusOK, result)
}
